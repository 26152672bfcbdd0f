package domain

import "errors"

var (
	// ErrNotFound is returned by repositories and services when a requested
	// record (portfolio, risk profile, session, catalog id) does not exist
	ErrNotFound = errors.New("not found")

	// ErrLayoutPrecondition marks input the ring layout refuses to draw:
	// allocations not summing to 1, negative allocations or bad radii.
	// The layout never renormalizes, so this always points at a data error upstream.
	ErrLayoutPrecondition = errors.New("ring layout precondition violated")

	// ErrInvalidSelectionEvent is returned when an incoming UI event cannot be parsed
	ErrInvalidSelectionEvent = errors.New("invalid selection event")
)
