package mapfile

import "errors"

var (
	// ErrUnknownFormat indicates a file extension no decoder is registered
	// for.
	ErrUnknownFormat = errors.New("mapfile: unsupported file format")

	// ErrBadDocument indicates a file that decoded but does not have the
	// expected shape: missing "paths to nodes"/"nodes to paths" keys,
	// non-list values, or non-scalar labels.
	ErrBadDocument = errors.New("mapfile: malformed map document")
)
