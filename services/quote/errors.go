package quote

import "errors"

var (
	// ErrUnknownExtra is returned for an extra id missing from the catalog
	ErrUnknownExtra = errors.New("unknown extra")
	// ErrUnknownExtraTime is returned for an extra-time id missing from the catalog
	ErrUnknownExtraTime = errors.New("unknown extra time option")
)
