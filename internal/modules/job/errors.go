package job

import "errors"

var (
	ErrNotFound   = errors.New("job not found")
	ErrForbidden  = errors.New("not allowed to act on this job")
	ErrTerminal   = errors.New("job is already completed or cancelled")
	ErrValidation = errors.New("invalid job action")
)
