package domain

import "time"

// CustomerPostStatus is the lifecycle status of a customer job request.
type CustomerPostStatus string

const (
	CustomerPostOpen   CustomerPostStatus = "open"
	CustomerPostClosed CustomerPostStatus = "closed"
)

type PostCategory struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	IsActive bool   `gorm:"column:is_active" json:"is_active"`
}

func (PostCategory) TableName() string { return "post_categories" }

// CustomerPost is a job request published by a customer.
// Owner, created-at and status are fixed at creation and survive edits.
type CustomerPost struct {
	ID          int64              `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64              `gorm:"column:user_id;index" json:"user_id"`
	CategoryID  int64              `gorm:"column:category_id" json:"category_id"`
	Title       string             `gorm:"column:title" json:"title"`
	Description string             `gorm:"column:description" json:"description"`
	Location    string             `gorm:"column:location" json:"location,omitempty"`
	PriceFrom   float64            `gorm:"column:price_from" json:"price_from"`
	PriceTo     float64            `gorm:"column:price_to" json:"price_to"`
	Status      CustomerPostStatus `gorm:"column:status" json:"status"`
	IsActive    bool               `gorm:"column:is_active" json:"is_active"`
	CreatedAt   time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at" json:"updated_at"`

	User     *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *PostCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (CustomerPost) TableName() string { return "customer_posts" }

func (p *CustomerPost) OwnedBy() int64 { return p.UserID }

// WorkerPost is a service offering published by a worker. No status field.
type WorkerPost struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64     `gorm:"column:user_id;index" json:"user_id"`
	CategoryID  int64     `gorm:"column:category_id" json:"category_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Location    string    `gorm:"column:location" json:"location,omitempty"`
	PriceFrom   float64   `gorm:"column:price_from" json:"price_from"`
	PriceTo     float64   `gorm:"column:price_to" json:"price_to"`
	IsActive    bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	User     *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *PostCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (WorkerPost) TableName() string { return "worker_posts" }

func (p *WorkerPost) OwnedBy() int64 { return p.UserID }
