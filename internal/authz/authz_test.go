package authz

import (
	"testing"

	"servicehub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanAct_Unauthenticated(t *testing.T) {
	d := CanAct(Principal{}, OpCustomerPostDetails, &domain.CustomerPost{UserID: 1})
	assert.False(t, d.Allowed)
	assert.Equal(t, "authentication required", d.Reason)
}

func TestCanAct_RoleGate(t *testing.T) {
	customer := Principal{UserID: 1, Role: domain.RoleCustomer}
	worker := Principal{UserID: 2, Role: domain.RoleWorker}
	admin := Principal{UserID: 3, Role: domain.RoleAdmin}

	assert.True(t, CanAct(customer, OpCustomerPostCreate, nil).Allowed)
	assert.False(t, CanAct(worker, OpCustomerPostCreate, nil).Allowed)
	assert.False(t, CanAct(admin, OpCustomerPostCreate, nil).Allowed)

	assert.True(t, CanAct(worker, OpWorkerPostCreate, nil).Allowed)
	assert.False(t, CanAct(customer, OpWorkerPostCreate, nil).Allowed)

	assert.True(t, CanAct(worker, OpOfferCreate, nil).Allowed)
	assert.False(t, CanAct(customer, OpOfferCreate, nil).Allowed)

	assert.True(t, CanAct(admin, OpApprovalReview, nil).Allowed)
	assert.False(t, CanAct(worker, OpApprovalReview, nil).Allowed)
	assert.True(t, CanAct(admin, OpReportExport, nil).Allowed)
	assert.False(t, CanAct(customer, OpReportExport, nil).Allowed)
}

func TestCanAct_OwnershipGate(t *testing.T) {
	owner := Principal{UserID: 7, Role: domain.RoleCustomer}
	stranger := Principal{UserID: 8, Role: domain.RoleCustomer}
	admin := Principal{UserID: 9, Role: domain.RoleAdmin}

	post := &domain.CustomerPost{ID: 1, UserID: 7}

	assert.True(t, CanAct(owner, OpCustomerPostEdit, post).Allowed)
	assert.False(t, CanAct(stranger, OpCustomerPostEdit, post).Allowed)
	assert.False(t, CanAct(stranger, OpCustomerPostDetails, post).Allowed)
	assert.True(t, CanAct(admin, OpCustomerPostDetails, post).Allowed)
	assert.True(t, CanAct(admin, OpCustomerPostDelete, post).Allowed)
}

func TestCanAct_AdminBypassScoped(t *testing.T) {
	admin := Principal{UserID: 9, Role: domain.RoleAdmin}

	// Admin sees any subscription, but payments are owner-only.
	sub := &domain.Subscription{ID: 1, UserID: 7}
	assert.True(t, CanAct(admin, OpSubscriptionDetails, sub).Allowed)

	payment := &domain.Payment{ID: 1, UserID: 7}
	assert.False(t, CanAct(admin, OpPaymentDetails, payment).Allowed)

	// Deciding an offer belongs to the customer-post owner; admins have no say.
	post := &domain.CustomerPost{ID: 3, UserID: 7}
	assert.False(t, CanAct(admin, OpOfferDecide, post).Allowed)
	assert.True(t, CanAct(Principal{UserID: 7, Role: domain.RoleCustomer}, OpOfferDecide, post).Allowed)
}

func TestCanAct_RatingEditOwnerOnly(t *testing.T) {
	rating := &domain.Rating{ID: 1, RaterID: 5}

	rater := Principal{UserID: 5, Role: domain.RoleWorker}
	admin := Principal{UserID: 9, Role: domain.RoleAdmin}

	assert.True(t, CanAct(rater, OpRatingEdit, rating).Allowed)
	assert.False(t, CanAct(admin, OpRatingEdit, rating).Allowed)
	assert.False(t, CanAct(Principal{UserID: 6, Role: domain.RoleCustomer}, OpRatingEdit, rating).Allowed)
}
