package order

import "errors"

var (
	ErrOrderNotFound = errors.New("Order not found.")
	ErrOrderExists   = errors.New("order already exists.")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrUnauthorized  = errors.New("unauthorized")
)
