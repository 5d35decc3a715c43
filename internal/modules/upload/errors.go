package upload

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrMediaNotFound = errors.New("media not found")
	ErrForbidden     = errors.New("not allowed to manage media on this post")
	ErrInvalidFormat = errors.New("file format is not allowed")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
	ErrMissingTarget = errors.New("exactly one target post must be given")
)
