package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrBusinessNotFound        = errors.New("business not found")
	ErrNotAvailable            = errors.New("no availability for the requested window")
	ErrOverbooking             = errors.New("overbooking constraint violation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
