package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

// CustomerPostFilters narrow the public listing.
type CustomerPostFilters struct {
	CategoryID int64
	OwnerID    int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

type CustomerPostRepository struct {
	db *gorm.DB
}

func NewCustomerPostRepository(db *gorm.DB) *CustomerPostRepository {
	return &CustomerPostRepository{db: db}
}

func (r *CustomerPostRepository) DB() *gorm.DB { return r.db }

func (r *CustomerPostRepository) Create(ctx context.Context, p *domain.CustomerPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID eager-loads the owner and category for display.
func (r *CustomerPostRepository) GetByID(ctx context.Context, id int64) (*domain.CustomerPost, error) {
	var p domain.CustomerPost
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CustomerPostRepository) List(ctx context.Context, f CustomerPostFilters) ([]domain.CustomerPost, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.CustomerPost{})
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.OwnerID != 0 {
		q = q.Where("user_id = ?", f.OwnerID)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []domain.CustomerPost
	err := q.Preload("User").Preload("Category").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *CustomerPostRepository) Update(ctx context.Context, p *domain.CustomerPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *CustomerPostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.CustomerPost{}, id).Error
}
