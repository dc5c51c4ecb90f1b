// Package clipboard writes captured color codes to the system clipboard.
// Headless builds get a stub that reports the clipboard as unavailable.
package clipboard

import "errors"

// ErrUnavailable reports that no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")
