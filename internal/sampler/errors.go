package sampler

import "errors"

var (
	// ErrInvalidSize is returned when the requested sample size is negative.
	ErrInvalidSize = errors.New("sample size must be a non-negative integer")
	// ErrInsufficientCandidates is returned when the sample size exceeds the candidate pool.
	ErrInsufficientCandidates = errors.New("not enough candidate words to draw the requested sample")
)
