package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidLogin     = errors.New("invalid login data")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrInvalidStatus   = errors.New("unknown order status")

	// Возвращается только при включённом StrictStock.
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)
