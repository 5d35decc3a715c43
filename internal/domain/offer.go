package domain

import (
	"fmt"
	"time"
)

// OfferStatus is server-controlled: clients never set it on create.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// OfferAction is a decision taken on a pending offer by the customer-post owner.
type OfferAction string

const (
	OfferActionAccept OfferAction = "accept"
	OfferActionReject OfferAction = "reject"
)

// NextOfferStatus applies an action to the current status.
// Only pending offers can move; accepted/rejected are terminal.
func NextOfferStatus(current OfferStatus, action OfferAction) (OfferStatus, error) {
	if current != OfferPending {
		return "", fmt.Errorf("offer is already %s", current)
	}
	switch action {
	case OfferActionAccept:
		return OfferAccepted, nil
	case OfferActionReject:
		return OfferRejected, nil
	default:
		return "", fmt.Errorf("unknown offer action %q", action)
	}
}

// Offer is a worker's bid on a customer post.
type Offer struct {
	ID             int64       `gorm:"column:id;primaryKey" json:"id"`
	CustomerPostID int64       `gorm:"column:customer_post_id;index" json:"customer_post_id"`
	UserID         int64       `gorm:"column:user_id;index" json:"user_id"`
	Price          float64     `gorm:"column:price" json:"price"`
	Status         OfferStatus `gorm:"column:status" json:"status"`
	CreatedAt      time.Time   `gorm:"column:created_at" json:"created_at"`

	CustomerPost *CustomerPost `gorm:"foreignKey:CustomerPostID" json:"customer_post,omitempty"`
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Offer) TableName() string { return "offers" }

func (o *Offer) OwnedBy() int64 { return o.UserID }
