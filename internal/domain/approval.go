package domain

import (
	"fmt"
	"time"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type ApprovalAction string

const (
	ApprovalActionApprove ApprovalAction = "approve"
	ApprovalActionReject  ApprovalAction = "reject"
)

// NextApprovalStatus applies a reviewer decision to a pending request.
func NextApprovalStatus(current ApprovalStatus, action ApprovalAction) (ApprovalStatus, error) {
	if current != ApprovalPending {
		return "", fmt.Errorf("approval request is already %s", current)
	}
	switch action {
	case ApprovalActionApprove:
		return ApprovalApproved, nil
	case ApprovalActionReject:
		return ApprovalRejected, nil
	default:
		return "", fmt.Errorf("unknown approval action %q", action)
	}
}

// WorkerApproval is a worker's request to be vetted by an admin.
// At most one pending request per user; requested-at is immutable.
type WorkerApproval struct {
	ID          int64          `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64          `gorm:"column:user_id;index" json:"user_id"`
	ReviewedBy  *int64         `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	Status      ApprovalStatus `gorm:"column:status" json:"status"`
	Notes       string         `gorm:"column:notes" json:"notes,omitempty"`
	RequestedAt time.Time      `gorm:"column:requested_at" json:"requested_at"`
	ReviewedAt  *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WorkerApproval) TableName() string { return "worker_approvals" }

func (a *WorkerApproval) OwnedBy() int64 { return a.UserID }
