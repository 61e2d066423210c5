package fleet

import "errors"

var (
	ErrValidation     = errors.New("invalid vehicle data")
	ErrNotFound       = errors.New("vehicle not found")
	ErrDuplicatePlaca = errors.New("vehicle plate already registered")
	ErrNotAvailable   = errors.New("vehicle is not available")
	ErrNotAllocated   = errors.New("vehicle is not allocated")
	ErrOdometerBack   = errors.New("odometer cannot decrease")
)
