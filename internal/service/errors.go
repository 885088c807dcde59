package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned by Checkout when the user has no cart items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductNotFound is returned when the referenced product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound is returned when the cart item does not exist or
	// belongs to another user
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrInvalidQuantity is returned when a quantity below 1 is requested;
	// callers must remove the item instead
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity so the caller can surface a useful message.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q", e.ProductName)
}
