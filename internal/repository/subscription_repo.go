package repository

import (
	"context"
	"time"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) DB() *gorm.DB { return r.db }

// ---- Plans ----

func (r *SubscriptionRepository) ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var plans []domain.SubscriptionPlan
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) GetPlanByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	var plan domain.SubscriptionPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepository) CreatePlan(ctx context.Context, plan *domain.SubscriptionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// UpdatePlanGuarded updates only when updated_at still matches what the caller
// read. Zero rows affected means either the row vanished or someone else got
// there first; the caller re-probes existence to tell the two apart.
func (r *SubscriptionRepository) UpdatePlanGuarded(ctx context.Context, plan *domain.SubscriptionPlan, readUpdatedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.SubscriptionPlan{}).
		Where("id = ? AND updated_at = ?", plan.ID, readUpdatedAt).
		Updates(map[string]any{
			"name":          plan.Name,
			"description":   plan.Description,
			"price":         plan.Price,
			"duration_days": plan.DurationDays,
			"is_active":     plan.IsActive,
			"updated_at":    time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *SubscriptionRepository) PlanExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SubscriptionPlan{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ---- Subscriptions ----

func (r *SubscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.WithContext(ctx).Preload("Plan").First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) GetActiveByUserID(ctx context.Context, userID int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.SubscriptionActive).
		Order("created_at DESC").
		Preload("Plan").
		First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Plan").
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Subscription, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Subscription{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}
