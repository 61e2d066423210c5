package order

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("order not found")
	ErrDuplicateNumero  = errors.New("order number already exists")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrSameStatus       = errors.New("order is already in this status")
	ErrOrderClosed      = errors.New("terminal order cannot change status")
	ErrQuoteRequired    = errors.New("quote number is required for this status")
	ErrPedidoRequired   = errors.New("purchase-order number is required for this status")
	ErrMotivoRequired   = errors.New("pause reason is required for this status")
)
