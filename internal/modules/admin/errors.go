package admin

import "errors"

var (
	ErrAdNotFound   = errors.New("advertisement not found")
	ErrUserNotFound = errors.New("user not found")
	ErrValidation   = errors.New("invalid input")
)
