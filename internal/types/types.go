// Package types provides shared type definitions for the application.
package types

import "fmt"

// ColorSample is a single reading of the pixel color under the mouse cursor.
// Immutable once constructed. Hex is always the uppercase #RRGGBB encoding
// of (R, G, B), and X, Y are screen coordinates >= 0.
type ColorSample struct {
	ID  string `json:"id"` // list key for the frontend, not persisted
	X   int    `json:"x"`
	Y   int    `json:"y"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// HexString returns the canonical uppercase #RRGGBB form of (r, g, b).
func HexString(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
