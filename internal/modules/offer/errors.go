package offer

import "errors"

var (
	ErrNotFound       = errors.New("offer not found")
	ErrPostNotFound   = errors.New("customer post not found")
	ErrForbidden      = errors.New("not allowed to act on this offer")
	ErrPostClosed     = errors.New("customer post is not open for offers")
	ErrAlreadyBid     = errors.New("a pending offer from this user already exists")
	ErrAlreadyDecided = errors.New("offer has already been decided")
	ErrValidation     = errors.New("invalid offer data")
)
