//go:build !cgo

package pixel

// stubBackend is used in headless builds where no screen access exists.
type stubBackend struct{}

func newPlatformBackend() Backend {
	return stubBackend{}
}

func (stubBackend) CursorPosition() (int, int, error) {
	return 0, 0, ErrDisplayUnavailable
}

func (stubBackend) PixelColor(int, int) (uint8, uint8, uint8, error) {
	return 0, 0, 0, ErrDisplayUnavailable
}
