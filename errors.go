package rip

import "errors"

// Sentinel error kinds (spec.md §7). Wrap with fmt.Errorf("...: %w", ErrX)
// at the call site so context survives while errors.Is keeps working.
var (
	// ErrOutOfBounds is returned by a write through the grid's indexing
	// primitive at an out-of-range position. Reads are deliberately lenient
	// and never return this error.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNoSeedFound is returned when seed selection exhausts all candidates.
	ErrNoSeedFound = errors.New("no seed found")

	// ErrNoPathFound is returned when path search cannot produce any valid
	// path within the bounded length search (see FindShortestPaths).
	ErrNoPathFound = errors.New("no path found")

	// ErrStuckPiece is diagnostic: MovableDirection found no free axis. It
	// does not abort construction.
	ErrStuckPiece = errors.New("piece is stuck")

	// ErrBadInput is returned when a shape file is malformed.
	ErrBadInput = errors.New("bad input")

	// ErrDomainError covers precondition violations, e.g. negative
	// accessibility depth.
	ErrDomainError = errors.New("domain error")
)
