//go:build !darwin

package pixel

// HasPermission checks if the app may read screen pixels.
// Only macOS gates single-pixel reads behind a permission.
func HasPermission() bool {
	return true
}

// RequestPermission asks the system to grant screen read permission.
func RequestPermission() {}
