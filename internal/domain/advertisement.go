package domain

import "time"

// Advertisement is an admin-managed banner shown on the marketplace.
type Advertisement struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id"`
	Title     string     `gorm:"column:title" json:"title"`
	ImageURL  string     `gorm:"column:image_url" json:"image_url"`
	TargetURL string     `gorm:"column:target_url" json:"target_url,omitempty"`
	IsActive  bool       `gorm:"column:is_active" json:"is_active"`
	StartsAt  *time.Time `gorm:"column:starts_at" json:"starts_at,omitempty"`
	EndsAt    *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Advertisement) TableName() string { return "advertisements" }

// PostMedium is a media attachment on a customer or worker post.
// Exactly one of the post ids is set.
type PostMedium struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	CustomerPostID *int64    `gorm:"column:customer_post_id" json:"customer_post_id,omitempty"`
	WorkerPostID   *int64    `gorm:"column:worker_post_id" json:"worker_post_id,omitempty"`
	FileURL        string    `gorm:"column:file_url" json:"file_url"`
	OriginalName   string    `gorm:"column:original_name" json:"original_name"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostMedium) TableName() string { return "post_media" }
