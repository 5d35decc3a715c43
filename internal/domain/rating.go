package domain

import "time"

// Rating is a one-shot review of one user by another.
// At most one rating per (rater, rated) pair; created-at is immutable.
type Rating struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	RaterID   int64     `gorm:"column:rater_id;index:idx_rating_pair" json:"rater_id"`
	RatedID   int64     `gorm:"column:rated_id;index:idx_rating_pair" json:"rated_id"`
	Value     int       `gorm:"column:value" json:"value"`
	Review    string    `gorm:"column:review" json:"review,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Rater *User `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
	Rated *User `gorm:"foreignKey:RatedID" json:"rated,omitempty"`
}

func (Rating) TableName() string { return "ratings" }

func (r *Rating) OwnedBy() int64 { return r.RaterID }

// RatingCustomerPost is a review left on a specific customer post.
type RatingCustomerPost struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	CustomerPostID int64     `gorm:"column:customer_post_id;index" json:"customer_post_id"`
	RaterID        int64     `gorm:"column:rater_id" json:"rater_id"`
	Value          int       `gorm:"column:value" json:"value"`
	Review         string    `gorm:"column:review" json:"review,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`

	Rater *User `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
}

func (RatingCustomerPost) TableName() string { return "rating_customer_posts" }

func (r *RatingCustomerPost) OwnedBy() int64 { return r.RaterID }
