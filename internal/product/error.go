package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("Product already exists.")
	ErrVersionConflict = errors.New("version conflict")
	ErrInvalidProduct  = errors.New("invalid product")
)
