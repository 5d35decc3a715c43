package repository

import (
	"context"

	"servicehub/internal/domain"

	"gorm.io/gorm"
)

type WorkerApprovalRepository struct {
	db *gorm.DB
}

func NewWorkerApprovalRepository(db *gorm.DB) *WorkerApprovalRepository {
	return &WorkerApprovalRepository{db: db}
}

func (r *WorkerApprovalRepository) DB() *gorm.DB { return r.db }

func (r *WorkerApprovalRepository) Create(ctx context.Context, a *domain.WorkerApproval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *WorkerApprovalRepository) GetByID(ctx context.Context, id int64) (*domain.WorkerApproval, error) {
	var a domain.WorkerApproval
	err := r.db.WithContext(ctx).Preload("User").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// HasPending enforces the one-pending-request-per-user rule at write time.
func (r *WorkerApprovalRepository) HasPending(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkerApproval{}).
		Where("user_id = ? AND status = ?", userID, domain.ApprovalPending).
		Count(&count).Error
	return count > 0, err
}

func (r *WorkerApprovalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WorkerApproval, error) {
	var approvals []domain.WorkerApproval
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at DESC").
		Find(&approvals).Error
	return approvals, err
}

func (r *WorkerApprovalRepository) ListPending(ctx context.Context, limit, offset int) ([]domain.WorkerApproval, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.WorkerApproval{}).
		Where("status = ?", domain.ApprovalPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var approvals []domain.WorkerApproval
	err := q.Preload("User").
		Order("requested_at ASC").
		Limit(limit).Offset(offset).
		Find(&approvals).Error
	if err != nil {
		return nil, 0, err
	}
	return approvals, total, nil
}

func (r *WorkerApprovalRepository) Update(ctx context.Context, a *domain.WorkerApproval) error {
	return r.db.WithContext(ctx).Save(a).Error
}
