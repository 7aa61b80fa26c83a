package widget

import "errors"

var (
	// ErrUnknownField is returned for a field the booking form does not have
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned for a value a field cannot hold
	ErrInvalidValue = errors.New("invalid field value")
)
