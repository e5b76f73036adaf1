package render

import "math"

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) empty() bool { return r.x1 <= r.x0 || r.y1 <= r.y0 }

func (r rect) grow(d float64) rect {
	return rect{r.x0 - d, r.y0 - d, r.x1 + d, r.y1 + d}
}

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x1 && o.x0 < r.x1 && r.y0 < o.y1 && o.y0 < r.y1
}

// layout holds the pixel geometry of one render. Symbol coordinates are
// relative to the top-left of the symbol, inside the margin.
type layout struct {
	width  int
	margin int
	side   float64 // symbol side in output pixels
	module float64 // module side in output pixels
	logo   rect    // logo box in symbol coordinates, empty without a logo
	hidden [][]bool
}

func newLayout(s Schema, sym *symbol) layout {
	width, margin := s.sizing()
	l := layout{
		width:  width,
		margin: margin,
		side:   float64(width - 2*margin),
	}
	l.module = l.side / float64(sym.dim)

	if s.Image == nil || s.Image.Image == nil {
		return l
	}

	b := s.Image.Image.Bounds()
	w, h := fitBox(float64(b.Dx()), float64(b.Dy()), l.side*s.ImageOptions.ImageSize)
	c := l.side / 2
	l.logo = rect{c - w/2, c - h/2, c + w/2, c + h/2}

	if s.ImageOptions.HideBackgroundDots {
		zone := l.logo.grow(float64(s.ImageOptions.Margin))
		l.hidden = make([][]bool, sym.dim)
		for y := range l.hidden {
			l.hidden[y] = make([]bool, sym.dim)
			for x := range l.hidden[y] {
				if sym.isFinder(x, y) {
					continue
				}
				m := rect{float64(x) * l.module, float64(y) * l.module, float64(x+1) * l.module, float64(y+1) * l.module}
				l.hidden[y][x] = m.overlaps(zone)
			}
		}
	}
	return l
}

func (l layout) isHidden(x, y int) bool {
	if l.hidden == nil {
		return false
	}
	return l.hidden[y][x]
}

// fitBox scales w x h down or up so the longer side equals limit.
func fitBox(w, h, limit float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	k := limit / math.Max(w, h)
	return w * k, h * k
}
