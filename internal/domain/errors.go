package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalid wraps operator input that fails validation.
	ErrInvalid = errors.New("invalid input")

	// ErrOutOfStock rejects adding a product with zero stock.
	ErrOutOfStock = errors.New("out of stock")
	// ErrInsufficientStock rejects a quantity above the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoCustomer      = errors.New("no customer selected")
	ErrAlreadyRefunded = errors.New("order already refunded")
	// ErrCheckoutState rejects an operation not allowed in the current
	// checkout stage.
	ErrCheckoutState = errors.New("invalid checkout state")
)
