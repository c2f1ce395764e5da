package renderengine

import "errors"

var (
	// ErrInvalidConfiguration is wrapped by every configuration failure;
	// configuration is validated eagerly at assignment time, never
	// deferred to Run.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
