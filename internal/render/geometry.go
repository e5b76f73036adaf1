package render

import (
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opCubic
	opClose
)

type point struct{ X, Y float64 }

// pathOp is one drawing command. Cubic uses all three points, Move and
// Line only the last one.
type pathOp struct {
	kind opKind
	pts  [3]point
}

// path is a renderer-neutral outline consumed by both the raster and the
// SVG writers.
type path []pathOp

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

func (p *path) moveTo(x, y float64) {
	*p = append(*p, pathOp{kind: opMove, pts: [3]point{2: {x, y}}})
}

func (p *path) lineTo(x, y float64) {
	*p = append(*p, pathOp{kind: opLine, pts: [3]point{2: {x, y}}})
}

func (p *path) cubicTo(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, pathOp{kind: opCubic, pts: [3]point{{x1, y1}, {x2, y2}, {x, y}}})
}

func (p *path) close() {
	*p = append(*p, pathOp{kind: opClose})
}

// roundedRect appends a rectangle whose corners are rounded with the radii
// r = {top-left, top-right, bottom-right, bottom-left}.
func (p *path) roundedRect(x, y, w, h float64, r [4]float64) {
	tl, tr, br, bl := r[0], r[1], r[2], r[3]

	p.moveTo(x+tl, y)
	p.lineTo(x+w-tr, y)
	if tr > 0 {
		p.cubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	p.lineTo(x+w, y+h-br)
	if br > 0 {
		p.cubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	p.lineTo(x+bl, y+h)
	if bl > 0 {
		p.cubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	p.lineTo(x, y+tl)
	if tl > 0 {
		p.cubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	p.close()
}

func (p *path) rect(x, y, w, h float64) {
	p.roundedRect(x, y, w, h, [4]float64{})
}

func (p *path) circle(cx, cy, r float64) {
	p.roundedRect(cx-r, cy-r, 2*r, 2*r, [4]float64{r, r, r, r})
}

// neighbours records which orthogonal neighbours of a module are drawn.
type neighbours struct {
	top, right, bottom, left bool
}

// freeCorners returns radius r for every corner whose two adjacent sides
// have no neighbour.
func (n neighbours) freeCorners(r float64) [4]float64 {
	var c [4]float64
	if !n.top && !n.left {
		c[0] = r
	}
	if !n.top && !n.right {
		c[1] = r
	}
	if !n.bottom && !n.right {
		c[2] = r
	}
	if !n.bottom && !n.left {
		c[3] = r
	}
	return c
}

// dot appends one data module of side u at (x, y).
func (p *path) dot(style qrconfig.DotStyle, n neighbours, x, y, u float64) {
	switch style {
	case qrconfig.DotDots:
		p.circle(x+u/2, y+u/2, u/2)
	case qrconfig.DotRounded:
		p.roundedRect(x, y, u, u, n.freeCorners(u*0.35))
	case qrconfig.DotExtraRounded:
		p.roundedRect(x, y, u, u, n.freeCorners(u/2))
	case qrconfig.DotClassy:
		c := n.freeCorners(u / 2)
		c[1], c[3] = 0, 0
		p.roundedRect(x, y, u, u, c)
	case qrconfig.DotClassyRounded:
		big, small := n.freeCorners(u/2), n.freeCorners(u/4)
		p.roundedRect(x, y, u, u, [4]float64{big[0], small[1], big[2], small[3]})
	default:
		p.rect(x, y, u, u)
	}
}

// finderRing appends the 7x7 outer ring of a finder pattern. It must be
// filled with the even-odd rule.
func (p *path) finderRing(style qrconfig.CornerSquareStyle, x, y, u float64) {
	outer, inner := 7*u, 5*u
	switch style {
	case qrconfig.CornerSquareDot:
		p.circle(x+outer/2, y+outer/2, outer/2)
		p.circle(x+outer/2, y+outer/2, inner/2)
	case qrconfig.CornerSquareExtraRounded:
		ro, ri := 2.5*u, 1.5*u
		p.roundedRect(x, y, outer, outer, [4]float64{ro, ro, ro, ro})
		p.roundedRect(x+u, y+u, inner, inner, [4]float64{ri, ri, ri, ri})
	default:
		p.rect(x, y, outer, outer)
		p.rect(x+u, y+u, inner, inner)
	}
}

// finderDot appends the 3x3 center of a finder pattern whose origin is (x, y).
func (p *path) finderDot(style qrconfig.CornerDotStyle, x, y, u float64) {
	side := 3 * u
	switch style {
	case qrconfig.CornerDotDot:
		p.circle(x+2*u+side/2, y+2*u+side/2, side/2)
	default:
		p.rect(x+2*u, y+2*u, side, side)
	}
}

// visible reports whether a data module is drawn as a dot.
func visible(sym *symbol, l layout, x, y int) bool {
	return sym.isDark(x, y) && !sym.isFinder(x, y) && !l.isHidden(x, y)
}

func neighboursOf(sym *symbol, l layout, x, y int) neighbours {
	on := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < sym.dim && y < sym.dim && visible(sym, l, x, y)
	}
	return neighbours{
		top:    on(x, y-1),
		right:  on(x+1, y),
		bottom: on(x, y+1),
		left:   on(x-1, y),
	}
}
