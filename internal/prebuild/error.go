package prebuild

import "errors"

var (
	ErrPrebuildNotFound = errors.New("prebuild not found")
	ErrPrebuildExists   = errors.New("Prebuild already exists.")
	ErrVersionConflict  = errors.New("version conflict")
	ErrInvalidPrebuild  = errors.New("invalid prebuild")
)
