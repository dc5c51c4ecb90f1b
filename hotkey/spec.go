package hotkey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vcaesar/keycode"
)

// ErrInvalidSpec reports a hotkey spec the OS primitive cannot register.
var ErrInvalidSpec = errors.New("invalid hotkey spec")

// modifiers maps accepted modifier spellings to their canonical name.
var modifiers = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"option":  "alt",
	"cmd":     "cmd",
	"command": "cmd",
	"super":   "cmd",
	"win":     "cmd",
	"meta":    "cmd",
}

// Combo is a parsed hotkey spec: zero or more modifiers plus one key.
type Combo struct {
	Key       string
	Modifiers []string
}

// Keys returns the combo in the order the hook library expects:
// the key first, then the modifiers.
func (c Combo) Keys() []string {
	return append([]string{c.Key}, c.Modifiers...)
}

// String returns the canonical spec form, modifiers first.
func (c Combo) String() string {
	return strings.Join(append(append([]string(nil), c.Modifiers...), c.Key), "+")
}

// ParseSpec parses a spec string like "ctrl+shift+c". The spec must name
// exactly one non-modifier key that exists in the keycode table; modifier
// spellings are canonicalized (e.g. "control" -> "ctrl"). Errors wrap
// ErrInvalidSpec.
func ParseSpec(spec string) (Combo, error) {
	var combo Combo

	trimmed := strings.TrimSpace(strings.ToLower(spec))
	if trimmed == "" {
		return Combo{}, fmt.Errorf("%w: empty spec", ErrInvalidSpec)
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(trimmed, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combo{}, fmt.Errorf("%w: %q has an empty component", ErrInvalidSpec, spec)
		}

		if mod, ok := modifiers[part]; ok {
			if seen[mod] {
				return Combo{}, fmt.Errorf("%w: %q repeats modifier %q", ErrInvalidSpec, spec, mod)
			}
			seen[mod] = true
			combo.Modifiers = append(combo.Modifiers, mod)
			continue
		}

		if _, ok := keycode.Keycode[part]; !ok {
			return Combo{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
		}
		if combo.Key != "" {
			return Combo{}, fmt.Errorf("%w: %q names more than one key", ErrInvalidSpec, spec)
		}
		combo.Key = part
	}

	if combo.Key == "" {
		return Combo{}, fmt.Errorf("%w: %q has no non-modifier key", ErrInvalidSpec, spec)
	}
	return combo, nil
}
