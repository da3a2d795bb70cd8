package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrForbidden       = errors.New("not allowed to modify this inquiry")
	ErrVersionConflict = errors.New("version conflict")
	ErrInvalidInquiry  = errors.New("invalid inquiry")
	ErrInvalidStatus   = errors.New("invalid inquiry status")
)
