package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.PostMedium) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*domain.PostMedium, error) {
	var m domain.PostMedium
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) ListByCustomerPost(ctx context.Context, postID int64) ([]domain.PostMedium, error) {
	var media []domain.PostMedium
	err := r.db.WithContext(ctx).
		Where("customer_post_id = ?", postID).
		Order("created_at ASC").
		Find(&media).Error
	return media, err
}

func (r *MediaRepository) ListByWorkerPost(ctx context.Context, postID int64) ([]domain.PostMedium, error) {
	var media []domain.PostMedium
	err := r.db.WithContext(ctx).
		Where("worker_post_id = ?", postID).
		Order("created_at ASC").
		Find(&media).Error
	return media, err
}

func (r *MediaRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PostMedium{}, id).Error
}
