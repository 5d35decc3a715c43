package subscription

import "time"

type PurchaseRequest struct {
	PlanID          int64 `json:"plan_id" binding:"required"`
	PaymentMethodID int64 `json:"payment_method_id" binding:"required"`
}

type CreatePlanRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
}

// UpdatePlanRequest carries the updated-at the admin read, so a concurrent
// change by another admin is detected instead of silently overwritten.
type UpdatePlanRequest struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Price         *float64  `json:"price,omitempty" binding:"omitempty,gt=0"`
	DurationDays  *int      `json:"duration_days,omitempty" binding:"omitempty,gt=0"`
	IsActive      *bool     `json:"is_active,omitempty"`
	ReadUpdatedAt time.Time `json:"read_updated_at" binding:"required"`
}
