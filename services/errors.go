package services

import "errors"

// Error kinds shared by all services. Controllers map these onto HTTP statuses;
// anything not wrapping one of them is treated as an internal storage failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)
