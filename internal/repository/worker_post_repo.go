package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type WorkerPostFilters struct {
	CategoryID int64
	OwnerID    int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

type WorkerPostRepository struct {
	db *gorm.DB
}

func NewWorkerPostRepository(db *gorm.DB) *WorkerPostRepository {
	return &WorkerPostRepository{db: db}
}

func (r *WorkerPostRepository) DB() *gorm.DB { return r.db }

func (r *WorkerPostRepository) Create(ctx context.Context, p *domain.WorkerPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *WorkerPostRepository) GetByID(ctx context.Context, id int64) (*domain.WorkerPost, error) {
	var p domain.WorkerPost
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *WorkerPostRepository) List(ctx context.Context, f WorkerPostFilters) ([]domain.WorkerPost, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.WorkerPost{})
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

	var posts []domain.WorkerPost
	err := q.Preload("User").Preload("Category").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *WorkerPostRepository) Update(ctx context.Context, p *domain.WorkerPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *WorkerPostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.WorkerPost{}, id).Error
}
