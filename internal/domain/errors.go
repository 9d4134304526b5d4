package domain

import "errors"

var (
	ErrEmptyOrder         = errors.New("order has no line items")
	ErrItemTotal          = errors.New("line item total could not be computed")
	ErrOrderTotal         = errors.New("order total could not be computed")
	ErrValidationFailed   = errors.New("order failed validation")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrUnknownPaymentType = errors.New("unknown payment method")
	ErrRenderFailed       = errors.New("document rendering failed")
)
