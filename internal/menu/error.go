package menu

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired = errors.New("menu item name is required")

	// -- Resource State --
	ErrItemNotFound   = errors.New("menu item not found")
	ErrOptionNotFound = errors.New("menu option not found")
)
