package raster

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"golang.org/x/image/colornames"
)

// DefaultBackground is the colour shown behind the map.
var DefaultBackground = color.RGBA{R: 0xf0, G: 0xf2, B: 0xf5, A: 0xff}

// DefaultBoundsColor is the colour of the content bounds outline.
var DefaultBoundsColor color.Color = colornames.Crimson

// ParseColor parses an SVG colour: a name such as "steelblue", "#rgb",
// "#rrggbb" or "rgb(r, g, b)". "none" and "transparent" give a fully
// transparent colour.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.Transparent, nil
	}
	if s == "" {
		return nil, fmt.Errorf("empty colour")
	}
	c, err := oksvg.ParseSVGColor(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if c == nil {
		return color.Transparent, nil
	}
	return c, nil
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
