package repository

import (
	"context"
	"time"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type AdvertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

func (r *AdvertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *AdvertisementRepository) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListActive returns banners currently inside their scheduled window.
func (r *AdvertisementRepository) ListActive(ctx context.Context) ([]domain.Advertisement, error) {
	now := time.Now()
	var ads []domain.Advertisement
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

func (r *AdvertisementRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Advertisement, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Advertisement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []domain.Advertisement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *AdvertisementRepository) Update(ctx context.Context, ad *domain.Advertisement) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Advertisement{}, id).Error
}
