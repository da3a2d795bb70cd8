package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("Appointment not found.")
	ErrForbidden           = errors.New("you can only modify your own pending appointments")
	ErrInvalidAppointment  = errors.New("invalid appointment")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)
