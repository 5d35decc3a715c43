package rating

import (
	"context"
	"errors"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	ratings       *repository.RatingRepository
	users         *repository.UserRepository
	customerPosts *repository.CustomerPostRepository
	jobs          *repository.JobProgressRepository
}

func NewService(
	ratings *repository.RatingRepository,
	users *repository.UserRepository,
	customerPosts *repository.CustomerPostRepository,
	jobs *repository.JobProgressRepository,
) *Service {
	return &Service{ratings: ratings, users: users, customerPosts: customerPosts, jobs: jobs}
}

// Create records a rating of one user by another. The rater is taken from the
// session, and a second rating of the same person is refused at write time.
func (s *Service) Create(ctx context.Context, p authz.Principal, req CreateRequest) (*domain.Rating, error) {
	if d := authz.CanAct(p, authz.OpRatingCreate, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	if req.RatedID == p.UserID {
		return nil, ErrSelfRating
	}

	if _, err := s.users.GetByID(ctx, req.RatedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.ratings.ExistsByPair(ctx, p.UserID, req.RatedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	r := &domain.Rating{
		RaterID: p.UserID,
		RatedID: req.RatedID,
		Value:   req.Value,
		Review:  req.Review,
	}
	if err := s.ratings.Create(ctx, r); err != nil {
		return nil, err
	}
	s.markJobsRated(ctx, p.UserID, req.RatedID)
	return r, nil
}

// markJobsRated flips the rater's flag on completed jobs between the pair.
// The flags are advisory; a failure here never undoes the rating itself.
func (s *Service) markJobsRated(ctx context.Context, raterID, ratedID int64) {
	db := s.jobs.DB().WithContext(ctx)
	db.Model(&domain.JobProgress{}).
		Where("status = ? AND requested_by_id = ? AND assigned_to_id = ?", domain.JobCompleted, raterID, ratedID).
		Update("rated_by_customer", true)
	db.Model(&domain.JobProgress{}).
		Where("status = ? AND requested_by_id = ? AND assigned_to_id = ?", domain.JobCompleted, ratedID, raterID).
		Update("rated_by_worker", true)
}

// Update lets the rater revise their verdict. Only value and review move;
// rater, rated and created-at keep their stored values.
func (s *Service) Update(ctx context.Context, p authz.Principal, id int64, req UpdateRequest) (*domain.Rating, error) {
	r, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := authz.CanAct(p, authz.OpRatingEdit, r); !d.Allowed {
		return nil, ErrForbidden
	}

	if req.Value != nil {
		if *req.Value < 1 || *req.Value > 5 {
			return nil, ErrValidation
		}
		r.Value = *req.Value
	}
	if req.Review != nil {
		r.Review = *req.Review
	}

	if err := s.ratings.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListForUser returns a user's received ratings together with the average.
func (s *Service) ListForUser(ctx context.Context, ratedID int64, q ListQuery) (*UserRatings, error) {
	if _, err := s.users.GetByID(ctx, ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	limit, offset := pageToRange(q.Page, q.Limit)
	ratings, total, err := s.ratings.ListForUser(ctx, ratedID, limit, offset)
	if err != nil {
		return nil, err
	}
	avg, err := s.ratings.AverageForUser(ctx, ratedID)
	if err != nil {
		return nil, err
	}
	return &UserRatings{Ratings: ratings, Total: total, Average: avg}, nil
}

// CreateForPost leaves a review on a customer post.
func (s *Service) CreateForPost(ctx context.Context, p authz.Principal, req CreatePostRatingRequest) (*domain.RatingCustomerPost, error) {
	if d := authz.CanAct(p, authz.OpRatingCreate, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	if _, err := s.customerPosts.GetByID(ctx, req.CustomerPostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	r := &domain.RatingCustomerPost{
		CustomerPostID: req.CustomerPostID,
		RaterID:        p.UserID,
		Value:          req.Value,
		Review:         req.Review,
	}
	if err := s.ratings.CreateForPost(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListForPost(ctx context.Context, postID int64) ([]domain.RatingCustomerPost, error) {
	if _, err := s.customerPosts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.ratings.ListForPost(ctx, postID)
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
