//go:build cgo

package pixel

import (
	"fmt"
	"strconv"

	"github.com/go-vgo/robotgo"
)

// robotgoBackend reads the cursor and screen through robotgo.
type robotgoBackend struct{}

func newPlatformBackend() Backend {
	return robotgoBackend{}
}

func (robotgoBackend) CursorPosition() (int, int, error) {
	if robotgo.DisplaysNum() == 0 {
		return 0, 0, ErrDisplayUnavailable
	}
	x, y := robotgo.Location()
	return x, y, nil
}

func (robotgoBackend) PixelColor(x, y int) (uint8, uint8, uint8, error) {
	if robotgo.DisplaysNum() == 0 {
		return 0, 0, 0, ErrDisplayUnavailable
	}

	// robotgo returns a bare lowercase rrggbb string, empty on failure.
	hex := robotgo.GetPixelColor(x, y)
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: pixel read returned %q", ErrDisplayUnavailable, hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: pixel read returned %q", ErrDisplayUnavailable, hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
