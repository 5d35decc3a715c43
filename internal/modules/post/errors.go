package post

import "errors"

var (
	ErrNotFound         = errors.New("post not found")
	ErrForbidden        = errors.New("forbidden")
	ErrValidation       = errors.New("validation failed")
	ErrCategoryNotFound = errors.New("category not found")
)
