package store

import "errors"

var (
	ErrUnknownProduct  = errors.New("store: unknown product")
	ErrEmptyCart       = errors.New("store: cart is empty")
	ErrInvalidShipping = errors.New("store: missing required shipping fields")
	ErrUnknownPayment  = errors.New("store: unknown payment method")
	ErrOrderNotFound   = errors.New("store: order not found")
	ErrUnknownView     = errors.New("store: unknown view")
)
