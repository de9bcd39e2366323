package checkpoint

import (
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/koenigsberg/solver"
)

// BackupSuffix is appended to the checkpoint path when rotating the previous
// file out of the way before a write.
const BackupSuffix = ".bak"

// recordVersion guards against decoding records from incompatible layouts.
const recordVersion = 1

// Record is the on-disk checkpoint layout: everything needed to resume a
// search, msgpack-encoded and zstd-compressed.
type Record struct {
	Version        int      `msgpack:"version"`
	Solutions      [][]byte `msgpack:"solutions"`
	Exhausted      [][]byte `msgpack:"exhausted"`
	Abandoned      uint64   `msgpack:"abandoned"`
	ElapsedSeconds float64  `msgpack:"elapsed_seconds"`
	Interval       int      `msgpack:"interval"`
}

// Manager persists snapshots to a single file with backup rotation and save
// throttling. The zero-path Manager is a no-op saver. Not safe for
// concurrent use; the solver is single-threaded by design.
type Manager struct {
	path        string
	minInterval time.Duration
	lastSave    time.Time
}

// NewManager returns a Manager writing to path, refusing unforced saves
// closer together than minInterval. An empty path disables saving entirely.
func NewManager(path string, minInterval time.Duration) *Manager {
	return &Manager{path: path, minInterval: minInterval}
}

// MaybeSave writes snap to the configured path. It reports false without
// error when no path is configured or when an unforced save arrives before
// minInterval has elapsed since the last write.
//
// Write sequence: rotate any existing file to "<path>.bak", then create and
// fill the primary. An interruption mid-write leaves the backup intact.
func (m *Manager) MaybeSave(snap solver.Snapshot, force bool) (bool, error) {
	// 1. No destination: silently skip.
	if m == nil || m.path == "" {
		return false, nil
	}

	// 2. Throttle unforced saves.
	if !force && !m.lastSave.IsZero() && time.Since(m.lastSave) < m.minInterval {
		return false, nil
	}

	rec := Record{
		Version:        recordVersion,
		Solutions:      snap.Solutions,
		Exhausted:      snap.Exhausted,
		Abandoned:      snap.Abandoned,
		ElapsedSeconds: snap.Elapsed.Seconds(),
		Interval:       snap.Interval,
	}
	if err := m.write(&rec); err != nil {
		return false, fmt.Errorf("checkpoint: save %s: %w", m.path, err)
	}
	m.lastSave = time.Now()

	return true, nil
}

// write rotates the previous checkpoint and streams the new record.
func (m *Manager) write(rec *Record) error {
	// Rotate the previous file out of harm's way.
	if _, err := os.Stat(m.path); err == nil {
		if err = os.Rename(m.path, m.path+BackupSuffix); err != nil {
			return err
		}
	}

	f, err := os.Create(m.path)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()

		return err
	}
	if err = msgpack.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		f.Close()

		return err
	}
	if err = zw.Close(); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Load reads the checkpoint and returns a solver.Snapshot ready for
// solver.WithResume. expectedInterval is the checkpoint-length interval the
// resuming run is configured with; a record written under a different one is
// rejected with ErrIntervalMismatch. Pass 0 to skip that check.
func (m *Manager) Load(expectedInterval int) (solver.Snapshot, error) {
	if m == nil || m.path == "" {
		return solver.Snapshot{}, ErrNoCheckpoint
	}

	f, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return solver.Snapshot{}, fmt.Errorf("checkpoint: %s: %w", m.path, ErrNoCheckpoint)
		}

		return solver.Snapshot{}, fmt.Errorf("checkpoint: open %s: %w", m.path, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return solver.Snapshot{}, fmt.Errorf("checkpoint: %s: %v: %w", m.path, err, ErrCorrupt)
	}
	defer zr.Close()

	var rec Record
	if err = msgpack.NewDecoder(zr).Decode(&rec); err != nil {
		return solver.Snapshot{}, fmt.Errorf("checkpoint: %s: %v: %w", m.path, err, ErrCorrupt)
	}
	if rec.Version != recordVersion {
		return solver.Snapshot{}, fmt.Errorf("checkpoint: %s: record version %d: %w", m.path, rec.Version, ErrCorrupt)
	}
	if expectedInterval > 0 && rec.Interval > 0 && rec.Interval != expectedInterval {
		return solver.Snapshot{}, fmt.Errorf("checkpoint: %s: saved interval %d, configured %d: %w",
			m.path, rec.Interval, expectedInterval, ErrIntervalMismatch)
	}

	return solver.Snapshot{
		Solutions: rec.Solutions,
		Exhausted: rec.Exhausted,
		Abandoned: rec.Abandoned,
		Elapsed:   time.Duration(rec.ElapsedSeconds * float64(time.Second)),
		Interval:  rec.Interval,
	}, nil
}
