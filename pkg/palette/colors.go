// Package palette holds the built-in color pairs and the persisted list of
// user-defined ones that counters copy their colors from.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// These are the colors used when no palette entry is selected.
const (
	FallbackBackground = "#000000"
	FallbackForeground = "#FFFFFF"
)

const (
	lightForeground = "#FFFFFF"
	darkForeground  = "#292929"

	// backgrounds with a relative luminance above this get the dark foreground.
	luminanceThreshold = 0.22
)

// ErrInvalidColor is returned for colors that aren't #RGB or #RRGGBB hex values.
var ErrInvalidColor = errors.New("colors must be #RRGGBB hex values")

// Color is a palette entry: a background and the foreground drawn on top of it,
// both as #RRGGBB hex strings.
type Color struct {
	Background string `json:"bg"`
	Foreground string `json:"fg"`
}

// Builtin returns the colors that ship with the app, in display order.
// A new slice is returned each time so callers can't modify the set.
func Builtin() []Color {
	return []Color{
		{Background: "#292929", Foreground: "#FFFFFF"},
		{Background: "#458C6A", Foreground: "#FFFFFF"},
		{Background: "#7466FF", Foreground: "#FFFFFF"},
		{Background: "#BDF0DC", Foreground: "#292929"},
		{Background: "#DE5C2F", Foreground: "#292929"},
		{Background: "#D0D85A", Foreground: "#292929"},
		{Background: "#D192CA", Foreground: "#292929"},
		{Background: "#F1E987", Foreground: "#292929"},
		{Background: "#F4F4F4", Foreground: "#292929"},
		{Background: "#D18665", Foreground: "#292929"},
	}
}

// ParseHex validates a #rgb or #rrggbb string and returns it as upper-case #RRGGBB.
func ParseHex(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !isHex(trimmed) {
		return "", fmt.Errorf("invalid hex color %q: %w", s, ErrInvalidColor)
	}

	c, err := colorful.Hex(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return strings.ToUpper(c.Hex()), nil
}

// isHex checks the exact shape colorful.Hex expects, which on its own ignores trailing input.
func isHex(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}

	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}

	return true
}

// Valid reports whether both colors parse as hex colors.
func (c Color) Valid() bool {
	if _, err := ParseHex(c.Background); err != nil {
		return false
	}

	_, err := ParseHex(c.Foreground)

	return err == nil
}

// ContrastForeground picks the light or dark foreground for the given background.
func ContrastForeground(background string) (string, error) {
	hex, err := ParseHex(background)
	if err != nil {
		return "", err
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", background, err)
	}

	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > luminanceThreshold {
		return darkForeground, nil
	}

	return lightForeground, nil
}

// Pick returns the entry at idx in colors, or the fallback pair if idx is out of range.
func Pick(colors []Color, idx int) Color {
	if idx < 0 || idx >= len(colors) {
		return Color{Background: FallbackBackground, Foreground: FallbackForeground}
	}

	return colors[idx]
}
