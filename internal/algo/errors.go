package algo

import (
	"errors"

	"github.com/san-kum/sortviz/internal/seq"
)

var (
	// ErrDone signals that the previous step was the last one. It is not a failure.
	ErrDone = errors.New("algo: done")

	// ErrExhausted indicates Advance was called after ErrDone was returned.
	ErrExhausted = errors.New("algo: advance called on an exhausted algorithm")

	// ErrDegenerateBucketing indicates a bucket size of zero (max value below length).
	ErrDegenerateBucketing = errors.New("algo: degenerate bucketing (max value below sequence length)")

	// ErrUnknownAlgorithm indicates a name or id with no registered constructor.
	ErrUnknownAlgorithm = errors.New("algo: unknown algorithm")

	// ErrInvalidInput is the sequence model's error, re-exported for callers
	// that only import this package.
	ErrInvalidInput = seq.ErrInvalidInput
)
