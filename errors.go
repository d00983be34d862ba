package slotmap

import "errors"

var (
	// ErrCapacityExhausted is returned by any operation that would require
	// growing the table past the top of the capacity ladder. The map is
	// left unchanged.
	ErrCapacityExhausted = errors.New("slotmap: capacity exhausted")

	// ErrAllocationFailed is returned when a rebuild's allocation is
	// refused by the configured Allocator. The map is left unchanged.
	ErrAllocationFailed = errors.New("slotmap: allocation failed")
)
