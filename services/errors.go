package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrForbidden        = errors.New("forbidden")
	ErrForbiddenField   = errors.New("field not allowed for role")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrNotDeliveryCrew  = errors.New("user is not delivery crew")
	ErrConflict         = errors.New("order changed concurrently")
)
