package job

// TransitionRequest moves an in-progress job to a terminal state.
type TransitionRequest struct {
	Action string `json:"action" binding:"required,oneof=complete cancel"`
}

type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}
