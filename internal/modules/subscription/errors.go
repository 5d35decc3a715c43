package subscription

import "errors"

var (
	ErrPlanNotFound        = errors.New("subscription plan not found")
	ErrPlanInactive        = errors.New("subscription plan is not available")
	ErrMethodNotFound      = errors.New("payment method not found")
	ErrNotFound            = errors.New("subscription not found")
	ErrForbidden           = errors.New("not allowed to act on this subscription")
	ErrConcurrencyConflict = errors.New("plan was modified concurrently")
	ErrValidation          = errors.New("invalid subscription data")
)
