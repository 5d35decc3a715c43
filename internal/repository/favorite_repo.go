package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

var ErrAlreadyFavorite = errors.New("post already in favorites")
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository stores bookmarks for both post kinds.
// Adds are duplicate-guarded by an existence check before insert.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) AddCustomerPost(ctx context.Context, userID, postID int64) (*domain.FavoriteCustomerPost, error) {
	exists, err := r.ExistsCustomerPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	fav := &domain.FavoriteCustomerPost{UserID: userID, CustomerPostID: postID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteRepository) RemoveCustomerPost(ctx context.Context, userID, postID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND customer_post_id = ?", userID, postID).
		Delete(&domain.FavoriteCustomerPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) ExistsCustomerPost(ctx context.Context, userID, postID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteCustomerPost{}).
		Where("user_id = ? AND customer_post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) ListCustomerPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.FavoriteCustomerPost, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.FavoriteCustomerPost{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favs []domain.FavoriteCustomerPost
	err := q.Preload("CustomerPost").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&favs).Error
	if err != nil {
		return nil, 0, err
	}
	return favs, total, nil
}

func (r *FavoriteRepository) AddWorkerPost(ctx context.Context, userID, postID int64) (*domain.FavoriteWorkerPost, error) {
	exists, err := r.ExistsWorkerPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	fav := &domain.FavoriteWorkerPost{UserID: userID, WorkerPostID: postID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteRepository) RemoveWorkerPost(ctx context.Context, userID, postID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND worker_post_id = ?", userID, postID).
		Delete(&domain.FavoriteWorkerPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) ExistsWorkerPost(ctx context.Context, userID, postID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteWorkerPost{}).
		Where("user_id = ? AND worker_post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) ListWorkerPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.FavoriteWorkerPost, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.FavoriteWorkerPost{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favs []domain.FavoriteWorkerPost
	err := q.Preload("WorkerPost").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&favs).Error
	if err != nil {
		return nil, 0, err
	}
	return favs, total, nil
}
