package rating

import "servicehub/internal/domain"

// CreateRequest names the rated user; the rater is always the session identity.
type CreateRequest struct {
	RatedID int64  `json:"rated_id" binding:"required"`
	Value   int    `json:"value" binding:"required,min=1,max=5"`
	Review  string `json:"review"`
}

// UpdateRequest edits the verdict only. Rater, rated and created-at are
// untouchable after creation.
type UpdateRequest struct {
	Value  *int    `json:"value,omitempty" binding:"omitempty,min=1,max=5"`
	Review *string `json:"review,omitempty"`
}

// CreatePostRatingRequest reviews a specific customer post.
type CreatePostRatingRequest struct {
	CustomerPostID int64  `json:"customer_post_id" binding:"required"`
	Value          int    `json:"value" binding:"required,min=1,max=5"`
	Review         string `json:"review"`
}

type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// UserRatings is a user's rating page: the list plus the running average.
type UserRatings struct {
	Ratings []domain.Rating `json:"ratings"`
	Total   int64           `json:"total"`
	Average float64         `json:"average"`
}
