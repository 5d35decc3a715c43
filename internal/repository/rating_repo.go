package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) DB() *gorm.DB { return r.db }

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ExistsByPair enforces the one-rating-per-(rater, rated) rule at write time.
func (r *RatingRepository) ExistsByPair(ctx context.Context, raterID, ratedID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Rating{}).
		Where("rater_id = ? AND rated_id = ?", raterID, ratedID).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepository) ListForUser(ctx context.Context, ratedID int64, limit, offset int) ([]domain.Rating, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Rating{}).Where("rated_id = ?", ratedID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ratings []domain.Rating
	err := q.Preload("Rater").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

func (r *RatingRepository) AverageForUser(ctx context.Context, ratedID int64) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Rating{}).
		Select("AVG(value)").
		Where("rated_id = ?", ratedID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *RatingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *RatingRepository) CreateForPost(ctx context.Context, rating *domain.RatingCustomerPost) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingRepository) ListForPost(ctx context.Context, postID int64) ([]domain.RatingCustomerPost, error) {
	var ratings []domain.RatingCustomerPost
	err := r.db.WithContext(ctx).
		Where("customer_post_id = ?", postID).
		Preload("Rater").
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}
