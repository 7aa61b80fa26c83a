package preference

import "errors"

var (
	// ErrMissingClientID is returned when a request carries no client id
	ErrMissingClientID = errors.New("missing client id")
	// ErrInvalidTheme is returned for a theme other than light or dark
	ErrInvalidTheme = errors.New("invalid theme")
)
