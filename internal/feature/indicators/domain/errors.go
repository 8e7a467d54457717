// Package domain defines domain-level errors for the indicators feature.
package domain

import "errors"

// Domain errors for indicator calculation.
// These are the only two fatal conditions; missing input values never
// surface as errors and instead propagate as nil derived fields.
var (
	// ErrEmptyInput indicates that the daily bar sequence was empty.
	// No partial result is produced.
	ErrEmptyInput = errors.New("daily bar input is empty")

	// ErrUnsupportedATRMethod indicates that the requested ATR smoothing
	// method is neither "sma" nor "wilder".
	ErrUnsupportedATRMethod = errors.New("unsupported ATR method")
)
