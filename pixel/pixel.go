// Package pixel reads the color of the screen pixel under the mouse cursor.
//
// The OS-level primitives (cursor position, single-pixel read) live behind
// the Backend interface. Build constraints select the implementation:
//
//	backend_robotgo.go: robotgo-based reader (needs cgo)
//	backend_stub.go:    headless / container stub
package pixel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.aimuz.me/swatch/internal/types"
)

// ErrDisplayUnavailable reports that there is no display surface to read
// from. Transient: callers skip the current sample and try again later.
var ErrDisplayUnavailable = errors.New("display unavailable")

// Backend is the OS interface for cursor and pixel reads.
type Backend interface {
	// CursorPosition returns the current pointer coordinates.
	CursorPosition() (x, y int, err error)

	// PixelColor returns the color of the screen pixel at (x, y).
	PixelColor(x, y int) (r, g, b uint8, err error)
}

// Sampler combines the cursor and pixel reads into a single Sample call.
type Sampler struct {
	backend Backend
}

// NewSampler returns a Sampler using the given backend.
func NewSampler(b Backend) *Sampler {
	return &Sampler{backend: b}
}

// Default returns a Sampler backed by the platform implementation.
func Default() *Sampler {
	return NewSampler(newPlatformBackend())
}

// Sample reads the pointer coordinates and the pixel color at them.
// Negative coordinates (multi-head layouts can report them for the
// virtual desktop origin) are clamped to 0.
func (s *Sampler) Sample() (types.ColorSample, error) {
	x, y, err := s.backend.CursorPosition()
	if err != nil {
		return types.ColorSample{}, fmt.Errorf("read cursor position: %w", err)
	}
	x, y = max(x, 0), max(y, 0)

	r, g, b, err := s.backend.PixelColor(x, y)
	if err != nil {
		return types.ColorSample{}, fmt.Errorf("read pixel at (%d, %d): %w", x, y, err)
	}

	return types.ColorSample{
		ID:  uuid.NewString(),
		X:   x,
		Y:   y,
		R:   r,
		G:   g,
		B:   b,
		Hex: types.HexString(r, g, b),
	}, nil
}
