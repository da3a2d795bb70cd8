package faq

import "errors"

var (
	ErrFAQNotFound = errors.New("FAQ not found.")
	ErrFAQExists   = errors.New("FAQ already exists.")
	ErrInvalidFAQ  = errors.New("invalid faq")
)
