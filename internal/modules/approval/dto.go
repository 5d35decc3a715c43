package approval

// ReviewRequest is the admin's decision on a pending request.
type ReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Notes  string `json:"notes"`
}

type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}
