package cart

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired    = errors.New("customer name is required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrIndexOutOfRange = errors.New("cart index out of range")
)
