package admin

import "errors"

var (
	ErrValidation     = errors.New("invalid user data")
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSelfDeactivate = errors.New("cannot deactivate own account")
)
