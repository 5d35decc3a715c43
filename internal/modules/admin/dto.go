package admin

import "time"

type CreateAdvertisementRequest struct {
	Title     string     `json:"title" binding:"required"`
	ImageURL  string     `json:"image_url" binding:"required"`
	TargetURL string     `json:"target_url"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
}

type UpdateAdvertisementRequest struct {
	Title     *string    `json:"title,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty"`
	TargetURL *string    `json:"target_url,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
}

type UserListQuery struct {
	Role  string `form:"role" binding:"omitempty,oneof=admin customer worker"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Users               int64 `json:"users"`
	Customers           int64 `json:"customers"`
	Workers             int64 `json:"workers"`
	CustomerPosts       int64 `json:"customer_posts"`
	WorkerPosts         int64 `json:"worker_posts"`
	JobsInProgress      int64 `json:"jobs_in_progress"`
	JobsCompleted       int64 `json:"jobs_completed"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	PendingApprovals    int64 `json:"pending_approvals"`
}
