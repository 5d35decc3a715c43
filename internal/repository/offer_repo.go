package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) DB() *gorm.DB { return r.db }

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("CustomerPost").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) ListByCustomerPost(ctx context.Context, postID int64) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Where("customer_post_id = ?", postID).
		Preload("User").
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Offer, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Offer{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var offers []domain.Offer
	err := q.Preload("CustomerPost").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&offers).Error
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

// HasPendingByUser guards against a worker bidding twice on the same post.
func (r *OfferRepository) HasPendingByUser(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Offer{}).
		Where("customer_post_id = ? AND user_id = ? AND status = ?", postID, userID, domain.OfferPending).
		Count(&count).Error
	return count > 0, err
}

func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}
