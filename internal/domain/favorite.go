package domain

import "time"

// FavoriteCustomerPost records a user bookmarking a customer post.
// Duplicate-guarded by existence check before insert.
type FavoriteCustomerPost struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID         int64     `gorm:"column:user_id;index" json:"user_id"`
	CustomerPostID int64     `gorm:"column:customer_post_id" json:"customer_post_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`

	CustomerPost *CustomerPost `gorm:"foreignKey:CustomerPostID" json:"customer_post,omitempty"`
}

func (FavoriteCustomerPost) TableName() string { return "favorite_customer_posts" }

type FavoriteWorkerPost struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID       int64     `gorm:"column:user_id;index" json:"user_id"`
	WorkerPostID int64     `gorm:"column:worker_post_id" json:"worker_post_id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`

	WorkerPost *WorkerPost `gorm:"foreignKey:WorkerPostID" json:"worker_post,omitempty"`
}

func (FavoriteWorkerPost) TableName() string { return "favorite_worker_posts" }
