package admin

import (
	"context"
	"errors"

	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	users    *repository.UserRepository
	ads      *repository.AdvertisementRepository
	payments *repository.PaymentRepository
}

func NewService(
	users *repository.UserRepository,
	ads *repository.AdvertisementRepository,
	payments *repository.PaymentRepository,
) *Service {
	return &Service{users: users, ads: ads, payments: payments}
}

// ListUsers pages through registered users, optionally filtered by role.
func (s *Service) ListUsers(ctx context.Context, q UserListQuery) ([]domain.User, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	users, total, err := s.users.List(ctx, domain.UserRole(q.Role), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

// Stats aggregates the dashboard counters in one pass over the tables.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	db := s.users.DB().WithContext(ctx)
	stats := &Stats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&domain.User{})},
		{&stats.Customers, db.Model(&domain.User{}).Where("role = ?", domain.RoleCustomer)},
		{&stats.Workers, db.Model(&domain.User{}).Where("role = ?", domain.RoleWorker)},
		{&stats.CustomerPosts, db.Model(&domain.CustomerPost{})},
		{&stats.WorkerPosts, db.Model(&domain.WorkerPost{})},
		{&stats.JobsInProgress, db.Model(&domain.JobProgress{}).Where("status = ?", domain.JobInProgress)},
		{&stats.JobsCompleted, db.Model(&domain.JobProgress{}).Where("status = ?", domain.JobCompleted)},
		{&stats.ActiveSubscriptions, db.Model(&domain.Subscription{}).Where("status = ?", domain.SubscriptionActive)},
		{&stats.PendingApprovals, db.Model(&domain.WorkerApproval{}).Where("status = ?", domain.ApprovalPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// ---- Advertisements ----

func (s *Service) CreateAdvertisement(ctx context.Context, req CreateAdvertisementRequest) (*domain.Advertisement, error) {
	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, ErrValidation
	}

	ad := &domain.Advertisement{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		IsActive:  true,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	}
	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) UpdateAdvertisement(ctx context.Context, id int64, req UpdateAdvertisementRequest) (*domain.Advertisement, error) {
	ad, err := s.ads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.ImageURL != nil {
		ad.ImageURL = *req.ImageURL
	}
	if req.TargetURL != nil {
		ad.TargetURL = *req.TargetURL
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}
	if req.StartsAt != nil {
		ad.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		ad.EndsAt = req.EndsAt
	}
	if ad.StartsAt != nil && ad.EndsAt != nil && ad.EndsAt.Before(*ad.StartsAt) {
		return nil, ErrValidation
	}

	if err := s.ads.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) DeleteAdvertisement(ctx context.Context, id int64) error {
	if _, err := s.ads.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdNotFound
		}
		return err
	}
	return s.ads.Delete(ctx, id)
}

func (s *Service) ListAdvertisements(ctx context.Context, page, limit int) ([]domain.Advertisement, int64, error) {
	l, offset := pageToRange(page, limit)
	return s.ads.ListAll(ctx, l, offset)
}

// ListActiveAdvertisements feeds the public banner strip.
func (s *Service) ListActiveAdvertisements(ctx context.Context) ([]domain.Advertisement, error) {
	return s.ads.ListActive(ctx)
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
