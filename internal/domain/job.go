package domain

import (
	"fmt"
	"time"
)

type JobStatus string

const (
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

type JobAction string

const (
	JobActionComplete JobAction = "complete"
	JobActionCancel   JobAction = "cancel"
)

// NextJobStatus applies an action to a job. Completed and cancelled are terminal.
func NextJobStatus(current JobStatus, action JobAction) (JobStatus, error) {
	if current != JobInProgress {
		return "", fmt.Errorf("job is already %s", current)
	}
	switch action {
	case JobActionComplete:
		return JobCompleted, nil
	case JobActionCancel:
		return JobCancelled, nil
	default:
		return "", fmt.Errorf("unknown job action %q", action)
	}
}

// JobProgress tracks an accepted offer being worked on.
// StartedAt is set once at creation and never overwritten by edits.
type JobProgress struct {
	ID              int64      `gorm:"column:id;primaryKey" json:"id"`
	CustomerPostID  int64      `gorm:"column:customer_post_id;index" json:"customer_post_id"`
	RequestedByID   int64      `gorm:"column:requested_by_id;index" json:"requested_by_id"`
	AssignedToID    int64      `gorm:"column:assigned_to_id;index" json:"assigned_to_id"`
	Status          JobStatus  `gorm:"column:status" json:"status"`
	StartedAt       time.Time  `gorm:"column:started_at" json:"started_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	RatedByCustomer bool       `gorm:"column:rated_by_customer" json:"rated_by_customer"`
	RatedByWorker   bool       `gorm:"column:rated_by_worker" json:"rated_by_worker"`

	CustomerPost *CustomerPost `gorm:"foreignKey:CustomerPostID" json:"customer_post,omitempty"`
	RequestedBy  *User         `gorm:"foreignKey:RequestedByID" json:"requested_by,omitempty"`
	AssignedTo   *User         `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (JobProgress) TableName() string { return "job_progresses" }

// Participant reports whether the user is either side of the job.
func (j *JobProgress) Participant(userID int64) bool {
	return j.RequestedByID == userID || j.AssignedToID == userID
}
