package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type JobProgressRepository struct {
	db *gorm.DB
}

func NewJobProgressRepository(db *gorm.DB) *JobProgressRepository {
	return &JobProgressRepository{db: db}
}

func (r *JobProgressRepository) DB() *gorm.DB { return r.db }

func (r *JobProgressRepository) Create(ctx context.Context, j *domain.JobProgress) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobProgressRepository) GetByID(ctx context.Context, id int64) (*domain.JobProgress, error) {
	var j domain.JobProgress
	err := r.db.WithContext(ctx).
		Preload("CustomerPost").
		Preload("RequestedBy").
		Preload("AssignedTo").
		First(&j, id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListByParticipant returns jobs where the user is either side.
func (r *JobProgressRepository) ListByParticipant(ctx context.Context, userID int64, limit, offset int) ([]domain.JobProgress, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.JobProgress{}).
		Where("requested_by_id = ? OR assigned_to_id = ?", userID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []domain.JobProgress
	err := q.Preload("CustomerPost").
		Preload("RequestedBy").
		Preload("AssignedTo").
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobProgressRepository) Update(ctx context.Context, j *domain.JobProgress) error {
	return r.db.WithContext(ctx).Save(j).Error
}
