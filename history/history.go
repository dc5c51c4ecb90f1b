// Package history keeps the bounded, ordered, durable log of captured
// color samples. The log holds at most MaxRecords entries; appending past
// capacity evicts the oldest entry first. Every mutation rewrites the
// whole on-disk file via a write-then-rename so a crash mid-write never
// leaves a truncated log behind.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.aimuz.me/swatch/internal/types"
)

// MaxRecords bounds the number of samples kept in the log.
const MaxRecords = 20

// LogFilename is the on-disk log file, resolved next to the executable.
const LogFilename = "color_log.json"

// ErrPersistenceFailed reports an I/O failure while writing the log.
// The in-memory log stays authoritative; the write is retried on the
// next mutation.
var ErrPersistenceFailed = errors.New("persist color log")

// record is the persisted form of a sample. IDs are session-local and
// regenerated on load.
type record struct {
	X   int    `json:"x"`
	Y   int    `json:"y"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// Store is the single source of truth for captured samples.
type Store struct {
	mu      sync.RWMutex
	path    string
	samples []types.ColorSample
}

// NewStore returns an empty store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves the log file location next to the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), LogFilename), nil
}

// Load reads the persisted log. A missing file yields an empty log with no
// error; malformed content yields an empty log and a warning. Neither case
// aborts startup.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read color log: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("color log is malformed, starting empty", "path", s.path, "error", err)
		return nil
	}

	// Defensive cap: the file never legitimately exceeds MaxRecords.
	if len(records) > MaxRecords {
		slog.Warn("color log exceeds capacity, keeping newest",
			"path", s.path, "records", len(records), "max", MaxRecords)
		records = records[len(records)-MaxRecords:]
	}

	s.samples = make([]types.ColorSample, len(records))
	for i, r := range records {
		s.samples[i] = types.ColorSample{
			ID:  uuid.NewString(),
			X:   r.X,
			Y:   r.Y,
			R:   r.R,
			G:   r.G,
			B:   r.B,
			Hex: r.Hex,
		}
	}
	return nil
}

// Append adds a sample, evicting the oldest entry when the log is full,
// and rewrites the persisted file. On a write failure the in-memory
// mutation is kept and ErrPersistenceFailed is returned.
func (s *Store) Append(sample types.ColorSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = append(s.samples, sample)
	if len(s.samples) > MaxRecords {
		s.samples = s.samples[1:]
	}

	return s.persistLocked()
}

// Clear empties the log and persists the empty state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = s.samples[:0]
	return s.persistLocked()
}

// Records returns a copy of the log in capture order, oldest first.
func (s *Store) Records() []types.ColorSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.ColorSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Len returns the number of samples in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// persistLocked rewrites the whole log file atomically: write a sibling
// temp file, then rename over the target. Must be called with s.mu held.
func (s *Store) persistLocked() error {
	records := make([]record, len(s.samples))
	for i, sample := range s.samples {
		records[i] = record{
			X:   sample.X,
			Y:   sample.Y,
			R:   sample.R,
			G:   sample.G,
			B:   sample.B,
			Hex: sample.Hex,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersistenceFailed, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}
