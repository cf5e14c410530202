package obj

import "errors"

// Precondition violations. These are programming errors and must not be
// ignored by callers.
var (
	ErrAlreadyInitialized = errors.New("obj: body already initialized")
	ErrNotInitialized     = errors.New("obj: body not initialized")
	ErrAlreadyLaunched    = errors.New("obj: ball already launched")
	ErrBallInFlight       = errors.New("obj: ball position is driven by physics")
	ErrNoBall             = errors.New("obj: launcher has no ball loaded")
)

// Configuration errors, raised while building entities from level data.
var (
	ErrOutOfBounds  = errors.New("obj: position out of level bounds")
	ErrTooSmall     = errors.New("obj: size below one grid unit")
	ErrMissingAsset = errors.New("obj: missing asset reference")
	ErrSizeMismatch = errors.New("obj: size does not match entity")
)
