package bandenergy

import "errors"

var (
	// ErrInvalidBandConfig reports a configuration rejected by Validate.
	ErrInvalidBandConfig = errors.New("bandenergy: invalid configuration")
	// ErrShortSeries reports an input shorter than the taper window.
	ErrShortSeries = errors.New("bandenergy: series shorter than taper window")
	// ErrInvalidBlockLen reports a non-positive block-average length.
	ErrInvalidBlockLen = errors.New("bandenergy: block length must be positive")
)
