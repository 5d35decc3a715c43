package rating

import "errors"

var (
	ErrNotFound     = errors.New("rating not found")
	ErrForbidden    = errors.New("not allowed to act on this rating")
	ErrAlreadyRated = errors.New("user already rated")
	ErrUserNotFound = errors.New("rated user not found")
	ErrPostNotFound = errors.New("customer post not found")
	ErrValidation   = errors.New("invalid rating data")
	ErrSelfRating   = errors.New("users cannot rate themselves")
)
