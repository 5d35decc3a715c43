package subscription

import (
	"context"
	"errors"
	"time"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	subscriptions *repository.SubscriptionRepository
	payments      *repository.PaymentRepository
}

func NewService(subscriptions *repository.SubscriptionRepository, payments *repository.PaymentRepository) *Service {
	return &Service{subscriptions: subscriptions, payments: payments}
}

// Purchase activates a plan for the caller. Expiring the prior active
// subscriptions, inserting the new one and synthesizing its payment happen
// in one transaction; a failure anywhere leaves no partial state.
func (s *Service) Purchase(ctx context.Context, p authz.Principal, req PurchaseRequest) (*domain.Subscription, error) {
	if d := authz.CanAct(p, authz.OpSubscriptionPurchase, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	plan, err := s.subscriptions.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	if _, err := s.payments.GetMethodByID(ctx, req.PaymentMethodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMethodNotFound
		}
		return nil, err
	}

	now := time.Now()
	sub := &domain.Subscription{
		UserID:    p.UserID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, plan.DurationDays),
		Status:    domain.SubscriptionActive,
	}

	err = s.subscriptions.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Subscription{}).
			Where("user_id = ? AND status = ?", p.UserID, domain.SubscriptionActive).
			Updates(map[string]any{"status": domain.SubscriptionExpired, "end_date": now}).
			Error; err != nil {
			return err
		}

		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		payment := &domain.Payment{
			UserID:          p.UserID,
			SubscriptionID:  sub.ID,
			PaymentMethodID: req.PaymentMethodID,
			Reference:       uuid.NewString(),
			Amount:          plan.Price,
			PaidAt:          now,
			Status:          domain.PaymentCompleted,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return s.subscriptions.GetByID(ctx, sub.ID)
}

// Current returns the caller's active subscription, nil when there is none.
func (s *Service) Current(ctx context.Context, p authz.Principal) (*domain.Subscription, error) {
	return s.subscriptions.GetActiveByUserID(ctx, p.UserID)
}

// History returns the caller's subscriptions; admins may read any user's.
func (s *Service) History(ctx context.Context, p authz.Principal, userID int64) ([]domain.Subscription, error) {
	if userID != p.UserID {
		probe := &domain.Subscription{UserID: userID}
		if d := authz.CanAct(p, authz.OpSubscriptionDetails, probe); !d.Allowed {
			return nil, ErrForbidden
		}
	}
	return s.subscriptions.ListByUserID(ctx, userID)
}

// ListPayments returns the caller's payments. Payments have no admin bypass:
// even admins only see their own through this path.
func (s *Service) ListPayments(ctx context.Context, p authz.Principal, userID int64) ([]domain.Payment, error) {
	if userID != p.UserID {
		probe := &domain.Payment{UserID: userID}
		if d := authz.CanAct(p, authz.OpPaymentDetails, probe); !d.Allowed {
			return nil, ErrForbidden
		}
	}
	return s.payments.ListByUser(ctx, userID)
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.subscriptions.ListPlans(ctx)
}

func (s *Service) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.payments.ListMethods(ctx)
}

// ---- Plan administration ----

func (s *Service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.SubscriptionPlan, error) {
	plan := &domain.SubscriptionPlan{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     true,
	}
	if err := s.subscriptions.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan applies an optimistic-concurrency update. When the guarded write
// hits zero rows, the plan either vanished or changed under the admin's feet;
// a fresh existence probe tells the two apart.
func (s *Service) UpdatePlan(ctx context.Context, id int64, req UpdatePlanRequest) (*domain.SubscriptionPlan, error) {
	plan, err := s.subscriptions.GetPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationDays != nil {
		plan.DurationDays = *req.DurationDays
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	affected, err := s.subscriptions.UpdatePlanGuarded(ctx, plan, req.ReadUpdatedAt)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		exists, err := s.subscriptions.PlanExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrPlanNotFound
		}
		return nil, ErrConcurrencyConflict
	}
	return s.subscriptions.GetPlanByID(ctx, id)
}
