package scheduler

import "errors"

// Precondition errors indicate caller misuse, as opposed to ordinary
// scheduling outcomes, which are always reported as overflow entries.
var (
	// ErrNoItems is returned when a build request contains no items.
	ErrNoItems = errors.New("scheduler: no items requested")

	// ErrInvalidDuration is returned when an item has a non-positive duration.
	ErrInvalidDuration = errors.New("scheduler: item duration must be positive")

	// ErrInvalidHours is returned when the schedulable window is empty.
	ErrInvalidHours = errors.New("scheduler: venue close must be after open")

	// ErrNoDays is returned when a trip request contains no days.
	ErrNoDays = errors.New("scheduler: trip must contain at least one day")

	// ErrNoCapacity is returned by the block manager when a reservation is
	// not fully contained in a single open block.
	ErrNoCapacity = errors.New("scheduler: interval not contained in an open block")
)
