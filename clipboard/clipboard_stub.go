//go:build !cgo

package clipboard

// Init prepares the clipboard. Always fails in headless builds.
func Init() error {
	return ErrUnavailable
}

// WriteText places text on the system clipboard.
func WriteText(string) error {
	return ErrUnavailable
}
