// Package design holds the read-only catalog of invoice designs.
package design

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout selects how a design is drawn on the page.
type Layout string

const (
	LayoutClassic Layout = "classic"
	LayoutModern  Layout = "modern"
	LayoutMinimal Layout = "minimal"
	LayoutBold    Layout = "bold"
	LayoutElegant Layout = "elegant"
)

// Layouts lists every valid layout.
var Layouts = []Layout{LayoutClassic, LayoutModern, LayoutMinimal, LayoutBold, LayoutElegant}

// ParseLayout returns the layout named s, or an error if s is not one of Layouts.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Layouts {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for catalog literals.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Design is an immutable styling descriptor applied at render time.
type Design struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Primary     Color  `json:"primary_color"`
	Secondary   Color  `json:"secondary_color"`
	Accent      Color  `json:"accent_color"`
	FontFamily  string `json:"font_family"`
	Layout      Layout `json:"layout"`
}
