package post

// CreateRequest is shared by customer and worker posts. Owner, status and
// created-at are never read from the payload.
type CreateRequest struct {
	CategoryID  int64   `json:"category_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location"`
	PriceFrom   float64 `json:"price_from" binding:"min=0"`
	PriceTo     float64 `json:"price_to" binding:"min=0"`
}

// UpdateRequest deliberately omits owner, status and created-at: whatever the
// client sends for those fields is discarded server-side.
type UpdateRequest struct {
	CategoryID  *int64   `json:"category_id,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	PriceFrom   *float64 `json:"price_from,omitempty"`
	PriceTo     *float64 `json:"price_to,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type ListQuery struct {
	CategoryID int64 `form:"category_id"`
	Page       int   `form:"page,default=1"`
	Limit      int   `form:"limit,default=20"`
}
