package solver

import "errors"

var (
	// ErrNilMap is returned when a nil *mapping.Normalized is passed to New.
	ErrNilMap = errors.New("solver: normalized map is nil")

	// ErrStartNodeNotFound indicates the requested start node does not exist
	// in the map.
	ErrStartNodeNotFound = errors.New("solver: start node not found")

	// ErrBadInterval indicates a non-positive checkpoint, prune, or report
	// interval.
	ErrBadInterval = errors.New("solver: interval must be positive")
)
