package checkpoint

import "errors"

var (
	// ErrNoCheckpoint indicates no checkpoint file exists at the configured
	// path (or no path is configured).
	ErrNoCheckpoint = errors.New("checkpoint: no checkpoint file")

	// ErrCorrupt indicates the checkpoint file exists but could not be
	// decompressed or decoded, or carries an unknown record version.
	ErrCorrupt = errors.New("checkpoint: unreadable checkpoint data")

	// ErrIntervalMismatch indicates the record was written under a different
	// checkpoint-length interval than the one now configured.
	ErrIntervalMismatch = errors.New("checkpoint: checkpoint-length interval changed since save")
)
