package pendencia

import "errors"

var (
	ErrValidation      = errors.New("invalid pendencia data")
	ErrNotFound        = errors.New("pendencia not found")
	ErrOrderNotFound   = errors.New("service order not found")
	ErrAlreadyResolved = errors.New("pendencia already resolved")
)
