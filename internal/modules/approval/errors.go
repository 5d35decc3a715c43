package approval

import "errors"

var (
	ErrNotFound       = errors.New("approval request not found")
	ErrForbidden      = errors.New("not allowed to act on this approval request")
	ErrPendingExists  = errors.New("a pending approval request already exists")
	ErrAlreadyDecided = errors.New("approval request has already been reviewed")
)
