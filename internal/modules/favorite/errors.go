package favorite

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrDuplicate    = errors.New("post already in favorites")
	ErrNotFavorite  = errors.New("post is not in favorites")
)
