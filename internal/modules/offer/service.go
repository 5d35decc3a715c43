package offer

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
	offers        *repository.OfferRepository
	customerPosts *repository.CustomerPostRepository
	jobs          *repository.JobProgressRepository
}

func NewService(
	offers *repository.OfferRepository,
	customerPosts *repository.CustomerPostRepository,
	jobs *repository.JobProgressRepository,
) *Service {
	return &Service{offers: offers, customerPosts: customerPosts, jobs: jobs}
}

// Create places a worker's bid on an open customer post.
// The stored offer always starts out pending no matter what the client sends.
func (s *Service) Create(ctx context.Context, p authz.Principal, req CreateRequest) (*domain.Offer, error) {
	if d := authz.CanAct(p, authz.OpOfferCreate, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	post, err := s.customerPosts.GetByID(ctx, req.CustomerPostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.Status != domain.CustomerPostOpen || !post.IsActive {
		return nil, ErrPostClosed
	}
	if post.UserID == p.UserID {
		return nil, ErrValidation
	}

	pending, err := s.offers.HasPendingByUser(ctx, post.ID, p.UserID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrAlreadyBid
	}

	o := &domain.Offer{
		CustomerPostID: post.ID,
		UserID:         p.UserID,
		Price:          req.Price,
		Status:         domain.OfferPending,
	}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Decide accepts or rejects a pending offer. Only the owner of the customer
// post it targets may decide; admins get no bypass here. Accepting opens a
// job and closes the post in the same transaction.
func (s *Service) Decide(ctx context.Context, p authz.Principal, offerID int64, req DecideRequest) (*domain.Offer, error) {
	o, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post, err := s.customerPosts.GetByID(ctx, o.CustomerPostID)
	if err != nil {
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpOfferDecide, post); !d.Allowed {
		return nil, ErrForbidden
	}

	next, err := domain.NextOfferStatus(o.Status, domain.OfferAction(req.Action))
	if err != nil {
		return nil, ErrAlreadyDecided
	}
	o.Status = next

	if next != domain.OfferAccepted {
		if err := s.offers.Update(ctx, o); err != nil {
			return nil, err
		}
		return o, nil
	}

	err = s.offers.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(o).Error; err != nil {
			return err
		}
		job := &domain.JobProgress{
			CustomerPostID:  post.ID,
			RequestedByID:   post.UserID,
			AssignedToID:    o.UserID,
			Status:          domain.JobInProgress,
			StartedAt:       time.Now(),
			RatedByCustomer: false,
			RatedByWorker:   false,
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		post.Status = domain.CustomerPostClosed
		return tx.Save(post).Error
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListForPost shows a customer the bids on their post.
func (s *Service) ListForPost(ctx context.Context, p authz.Principal, postID int64) ([]domain.Offer, error) {
	post, err := s.customerPosts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpOfferDecide, post); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.offers.ListByCustomerPost(ctx, postID)
}

// ListMine shows a worker their own bids.
func (s *Service) ListMine(ctx context.Context, p authz.Principal, q ListQuery) ([]domain.Offer, int64, error) {
	limit, offset := pageToRange(q.Page, q.Limit)
	return s.offers.ListByUser(ctx, p.UserID, limit, offset)
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
