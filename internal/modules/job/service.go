package job

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
	jobs *repository.JobProgressRepository
}

func NewService(jobs *repository.JobProgressRepository) *Service {
	return &Service{jobs: jobs}
}

// Get returns a job to one of its two participants.
func (s *Service) Get(ctx context.Context, p authz.Principal, id int64) (*domain.JobProgress, error) {
	j, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpJobTransition, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	if !j.Participant(p.UserID) && p.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return j, nil
}

// ListMine returns jobs where the caller is either the requesting customer or
// the assigned worker.
func (s *Service) ListMine(ctx context.Context, p authz.Principal, q ListQuery) ([]domain.JobProgress, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	return s.jobs.ListByParticipant(ctx, p.UserID, limit, offset)
}

// Transition applies complete or cancel to an in-progress job. Completing
// stamps completed-at; started-at is never touched after creation.
func (s *Service) Transition(ctx context.Context, p authz.Principal, id int64, req TransitionRequest) (*domain.JobProgress, error) {
	j, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpJobTransition, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	if !j.Participant(p.UserID) {
		return nil, ErrForbidden
	}

	action := domain.JobAction(req.Action)
	if action != domain.JobActionComplete && action != domain.JobActionCancel {
		return nil, ErrValidation
	}
	next, err := domain.NextJobStatus(j.Status, action)
	if err != nil {
		return nil, ErrTerminal
	}

	j.Status = next
	if next == domain.JobCompleted {
		now := time.Now()
		j.CompletedAt = &now
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) load(ctx context.Context, id int64) (*domain.JobProgress, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return j, nil
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
