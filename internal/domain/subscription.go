package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

type SubscriptionPlan struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Description  string    `gorm:"column:description" json:"description,omitempty"`
	Price        float64   `gorm:"column:price" json:"price"`
	DurationDays int       `gorm:"column:duration_days" json:"duration_days"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SubscriptionPlan) TableName() string { return "subscription_plans" }

// Subscription of a user to a plan. Purchasing a new subscription expires every
// prior active one for the same user in the same transaction.
type Subscription struct {
	ID        int64              `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64              `gorm:"column:user_id;index" json:"user_id"`
	PlanID    int64              `gorm:"column:plan_id" json:"plan_id"`
	StartDate time.Time          `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time          `gorm:"column:end_date" json:"end_date"`
	Status    SubscriptionStatus `gorm:"column:status" json:"status"`
	CreatedAt time.Time          `gorm:"column:created_at" json:"created_at"`

	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) OwnedBy() int64 { return s.UserID }

type PaymentMethod struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	IsActive bool   `gorm:"column:is_active" json:"is_active"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is synthesized as a side effect of a subscription purchase.
// Date and status are server-assigned.
type Payment struct {
	ID              int64         `gorm:"column:id;primaryKey" json:"id"`
	UserID          int64         `gorm:"column:user_id;index" json:"user_id"`
	SubscriptionID  int64         `gorm:"column:subscription_id" json:"subscription_id"`
	PaymentMethodID int64         `gorm:"column:payment_method_id" json:"payment_method_id"`
	Reference       string        `gorm:"column:reference" json:"reference"`
	Amount          float64       `gorm:"column:amount" json:"amount"`
	PaidAt          time.Time     `gorm:"column:paid_at" json:"paid_at"`
	Status          PaymentStatus `gorm:"column:status" json:"status"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) OwnedBy() int64 { return p.UserID }
