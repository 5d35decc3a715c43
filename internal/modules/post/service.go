package post

import (
	"context"
	"errors"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	customerPosts *repository.CustomerPostRepository
	workerPosts   *repository.WorkerPostRepository
	categories    *repository.CategoryRepository
}

func NewService(
	customerPosts *repository.CustomerPostRepository,
	workerPosts *repository.WorkerPostRepository,
	categories *repository.CategoryRepository,
) *Service {
	return &Service{
		customerPosts: customerPosts,
		workerPosts:   workerPosts,
		categories:    categories,
	}
}

// -------------------- Customer posts --------------------

func (s *Service) CreateCustomerPost(ctx context.Context, p authz.Principal, req CreateRequest) (*domain.CustomerPost, error) {
	if d := authz.CanAct(p, authz.OpCustomerPostCreate, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	post := &domain.CustomerPost{
		UserID:      p.UserID, // session identity, never the payload
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PriceFrom:   req.PriceFrom,
		PriceTo:     req.PriceTo,
		Status:      domain.CustomerPostOpen,
		IsActive:    true,
	}

	if err := s.customerPosts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetCustomerPost probes existence before authorization: a missing post is
// NotFound even for strangers, an existing one is Forbidden for them.
func (s *Service) GetCustomerPost(ctx context.Context, p authz.Principal, id int64) (*domain.CustomerPost, error) {
	post, err := s.customerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := authz.CanAct(p, authz.OpCustomerPostDetails, post); !d.Allowed {
		return nil, ErrForbidden
	}
	return post, nil
}

func (s *Service) UpdateCustomerPost(ctx context.Context, p authz.Principal, id int64, req UpdateRequest) (*domain.CustomerPost, error) {
	post, err := s.customerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := authz.CanAct(p, authz.OpCustomerPostEdit, post); !d.Allowed {
		return nil, ErrForbidden
	}

	// Owner, created-at and status stay exactly as loaded.
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		post.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.PriceFrom != nil {
		post.PriceFrom = *req.PriceFrom
	}
	if req.PriceTo != nil {
		post.PriceTo = *req.PriceTo
	}
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}
	if post.PriceTo < post.PriceFrom {
		return nil, ErrValidation
	}

	if err := s.customerPosts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) DeleteCustomerPost(ctx context.Context, p authz.Principal, id int64) error {
	post, err := s.customerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if d := authz.CanAct(p, authz.OpCustomerPostDelete, post); !d.Allowed {
		return ErrForbidden
	}
	return s.customerPosts.Delete(ctx, id)
}

// ListCustomerPosts is the public browse: active posts only, any caller.
func (s *Service) ListCustomerPosts(ctx context.Context, q ListQuery) ([]domain.CustomerPost, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	return s.customerPosts.List(ctx, repository.CustomerPostFilters{
		CategoryID: q.CategoryID,
		ActiveOnly: true,
		Limit:      limit,
		Offset:     offset,
	})
}

// ListMyCustomerPosts shows the caller their own posts, active or not.
// Admins see everyone's.
func (s *Service) ListMyCustomerPosts(ctx context.Context, p authz.Principal, q ListQuery) ([]domain.CustomerPost, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	ownerID := p.UserID
	if p.Role == domain.RoleAdmin {
		ownerID = 0
	}
	return s.customerPosts.List(ctx, repository.CustomerPostFilters{
		CategoryID: q.CategoryID,
		OwnerID:    ownerID,
		Limit:      limit,
		Offset:     offset,
	})
}

// -------------------- Worker posts --------------------

func (s *Service) CreateWorkerPost(ctx context.Context, p authz.Principal, req CreateRequest) (*domain.WorkerPost, error) {
	if d := authz.CanAct(p, authz.OpWorkerPostCreate, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	post := &domain.WorkerPost{
		UserID:      p.UserID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PriceFrom:   req.PriceFrom,
		PriceTo:     req.PriceTo,
		IsActive:    true,
	}

	if err := s.workerPosts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) GetWorkerPost(ctx context.Context, p authz.Principal, id int64) (*domain.WorkerPost, error) {
	post, err := s.workerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := authz.CanAct(p, authz.OpWorkerPostDetails, post); !d.Allowed {
		return nil, ErrForbidden
	}
	return post, nil
}

func (s *Service) UpdateWorkerPost(ctx context.Context, p authz.Principal, id int64, req UpdateRequest) (*domain.WorkerPost, error) {
	post, err := s.workerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := authz.CanAct(p, authz.OpWorkerPostEdit, post); !d.Allowed {
		return nil, ErrForbidden
	}

	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		post.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.PriceFrom != nil {
		post.PriceFrom = *req.PriceFrom
	}
	if req.PriceTo != nil {
		post.PriceTo = *req.PriceTo
	}
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}
	if post.PriceTo < post.PriceFrom {
		return nil, ErrValidation
	}

	if err := s.workerPosts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) DeleteWorkerPost(ctx context.Context, p authz.Principal, id int64) error {
	post, err := s.workerPosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if d := authz.CanAct(p, authz.OpWorkerPostDelete, post); !d.Allowed {
		return ErrForbidden
	}
	return s.workerPosts.Delete(ctx, id)
}

func (s *Service) ListWorkerPosts(ctx context.Context, q ListQuery) ([]domain.WorkerPost, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	return s.workerPosts.List(ctx, repository.WorkerPostFilters{
		CategoryID: q.CategoryID,
		ActiveOnly: true,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *Service) ListMyWorkerPosts(ctx context.Context, p authz.Principal, q ListQuery) ([]domain.WorkerPost, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	ownerID := p.UserID
	if p.Role == domain.RoleAdmin {
		ownerID = 0
	}
	return s.workerPosts.List(ctx, repository.WorkerPostFilters{
		CategoryID: q.CategoryID,
		OwnerID:    ownerID,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *Service) validate(ctx context.Context, req CreateRequest) error {
	if req.PriceTo < req.PriceFrom {
		return ErrValidation
	}
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		return ErrCategoryNotFound
	}
	return nil
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
