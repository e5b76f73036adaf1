package render

import (
	"image/color"
	"math"
)

// palette is the resolved set of colors for one render. Unparseable color
// strings have already fallen back to defaults here.
type palette struct {
	fg           color.RGBA
	bg           color.RGBA
	cornerSquare color.RGBA
	cornerDot    color.RGBA
	gradient     *Gradient
	stops        [2]color.RGBA
}

func newPalette(s Schema) palette {
	fg := parseColor(s.Dots.Color, black)
	p := palette{
		fg:           fg,
		bg:           parseColor(s.Background.Color, white),
		cornerSquare: parseColor(s.CornersSquare.Color, fg),
		cornerDot:    parseColor(s.CornersDot.Color, fg),
	}
	if g := s.Dots.Gradient; g != nil {
		p.gradient = g
		p.stops = [2]color.RGBA{parseColor(g.Stops[0].Color, fg), parseColor(g.Stops[1].Color, fg)}
	}
	return p
}

func (p palette) transparent() bool { return p.bg.A == 0 }

// gradientLine returns the start and end points of the gradient axis across
// a square of the given side, as SVG userSpaceOnUse coordinates.
func gradientLine(rotation, side float64) (x1, y1, x2, y2 float64) {
	rad := rotation * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	half := side * (math.Abs(dx) + math.Abs(dy)) / 2
	c := side / 2
	return c - dx*half, c - dy*half, c + dx*half, c + dy*half
}

// dotColor returns the fill of a data module centered at (x, y) in a
// symbol of the given side.
func (p palette) dotColor(x, y, side float64) color.RGBA {
	if p.gradient == nil {
		return p.fg
	}

	x1, y1, x2, y2 := gradientLine(p.gradient.Rotation, side)
	ax, ay := x2-x1, y2-y1
	length := ax*ax + ay*ay
	if length == 0 {
		return p.stops[0]
	}
	t := ((x-x1)*ax + (y-y1)*ay) / length

	o0, o1 := p.gradient.Stops[0].Offset, p.gradient.Stops[1].Offset
	if o1 > o0 {
		t = (t - o0) / (o1 - o0)
	}
	return lerpColor(p.stops[0], p.stops[1], t)
}
