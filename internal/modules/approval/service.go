package approval

import (
	"context"
	"errors"
	"time"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	approvals *repository.WorkerApprovalRepository
}

func NewService(approvals *repository.WorkerApprovalRepository) *Service {
	return &Service{approvals: approvals}
}

// Request files a new vetting request for the calling worker. A user with a
// request still in the queue cannot file another one.
func (s *Service) Request(ctx context.Context, p authz.Principal) (*domain.WorkerApproval, error) {
	if d := authz.CanAct(p, authz.OpApprovalRequest, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	pending, err := s.approvals.HasPending(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPendingExists
	}

	a := &domain.WorkerApproval{
		UserID:      p.UserID,
		Status:      domain.ApprovalPending,
		RequestedAt: time.Now(),
	}
	if err := s.approvals.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Review applies the admin decision. Reviewed-at and reviewed-by are stamped
// here and nowhere else; requested-at keeps its original value.
func (s *Service) Review(ctx context.Context, p authz.Principal, id int64, req ReviewRequest) (*domain.WorkerApproval, error) {
	if d := authz.CanAct(p, authz.OpApprovalReview, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	a, err := s.approvals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	next, err := domain.NextApprovalStatus(a.Status, domain.ApprovalAction(req.Action))
	if err != nil {
		return nil, ErrAlreadyDecided
	}

	now := time.Now()
	a.Status = next
	a.ReviewedBy = &p.UserID
	a.ReviewedAt = &now
	a.Notes = req.Notes

	if err := s.approvals.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// MyRequests returns the caller's own approval history.
func (s *Service) MyRequests(ctx context.Context, p authz.Principal) ([]domain.WorkerApproval, error) {
	return s.approvals.ListByUser(ctx, p.UserID)
}

// PendingQueue lists pending requests oldest first for the admin dashboard.
func (s *Service) PendingQueue(ctx context.Context, p authz.Principal, q ListQuery) ([]domain.WorkerApproval, int64, error) {
	if d := authz.CanAct(p, authz.OpApprovalReview, nil); !d.Allowed {
		return nil, 0, ErrForbidden
	}
	limit, offset := pageToRange(q.Page, q.Limit)
	return s.approvals.ListPending(ctx, limit, offset)
}

func pageToRange(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}
