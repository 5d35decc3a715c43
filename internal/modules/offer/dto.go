package offer

// CreateRequest carries only the worker's terms. Status and created-at are
// always assigned server-side.
type CreateRequest struct {
	CustomerPostID int64   `json:"customer_post_id" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
}

// DecideRequest is the customer's verdict on a pending offer.
type DecideRequest struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}
