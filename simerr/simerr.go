// Package simerr collects the sentinel error values shared across the
// simulation core, so callers can use errors.Is regardless of which
// package actually detected the failure.
package simerr

import "errors"

var (
	// ErrMalformedInput is returned when a dataset row fails to parse,
	// the header is missing, or trailing data remains after parsing.
	ErrMalformedInput = errors.New("simerr: malformed input")

	// ErrEmptyDataset is returned when a dataset contains zero bodies.
	ErrEmptyDataset = errors.New("simerr: empty dataset")

	// ErrNonFiniteState is returned when a position, velocity,
	// acceleration, or AABB extent is NaN or ±Inf.
	ErrNonFiniteState = errors.New("simerr: non-finite state")

	// ErrPipelineCancelled is returned when a cancellation token aborted
	// a tick. It is a recoverable outcome, not a fatal error.
	ErrPipelineCancelled = errors.New("simerr: pipeline cancelled")

	// ErrSchedulerFault is returned when a scheduler worker panics or the
	// executor cannot make progress (e.g. resource exhaustion).
	ErrSchedulerFault = errors.New("simerr: scheduler fault")
)
