// Package checkpoint persists and restores solver progress so a multi-hour
// search can be interrupted and resumed without repeating exhausted work.
//
// What:
//
//   - Manager: writes solver.Snapshot values to a single file as a
//     msgpack-encoded, zstd-compressed record, and reads them back. It
//     implements solver.Checkpointer.
//   - Saves are throttled by a minimum interval between writes; forced saves
//     (shutdown, interrupts) bypass the throttle.
//   - Before each write the existing file is rotated to "<path>.bak", so an
//     interrupted save never destroys the previous checkpoint.
//
// Load policy:
//
//	A missing file returns ErrNoCheckpoint; unreadable or truncated data
//	returns ErrCorrupt; a record written under a different checkpoint-length
//	interval returns ErrIntervalMismatch (changing the interval mid-resume
//	would corrupt pruning semantics). Callers are expected to treat all of
//	these as "start fresh with a warning", never as fatal.
//
// Record layout (version 1): solutions, exhausted prefixes (both as raw
// path-ID byte sequences), the abandoned-trail count, cumulative elapsed
// seconds, and the checkpoint interval the state was produced under.
package checkpoint
