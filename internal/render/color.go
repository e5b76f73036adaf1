package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// parseColor parses a #rrggbb value, falling back to def for anything else.
// "transparent" yields a fully transparent color.
func parseColor(s string, def color.RGBA) color.RGBA {
	if s == "" {
		return def
	}
	if strings.EqualFold(s, "transparent") {
		return color.RGBA{0, 0, 0, 0}
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return def
	}

	r, err1 := strconv.ParseUint(s[0:2], 16, 8)
	g, err2 := strconv.ParseUint(s[2:4], 16, 8)
	b, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return def
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// lerpColor performs linear interpolation between two colors.
func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: uint8(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: uint8(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
		A: 255,
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
