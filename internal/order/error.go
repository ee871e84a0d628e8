package order

import "errors"

var (
	// -- Validation & Input --
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrMenuItemRequired     = errors.New("order item must reference a menu item")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Lifecycle --
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderCompleted    = errors.New("order already completed")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)
