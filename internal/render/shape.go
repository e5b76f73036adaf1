package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// styledShape draws every dot and corner style for the standard writer.
// Finder patterns are drawn whole when their origin module is visited, so
// the rings stay continuous instead of being assembled from squares.
type styledShape struct {
	sym *symbol
	lay layout
	pal palette
	sch Schema
}

var _ standard.IShape = (*styledShape)(nil)

func (s *styledShape) locate(ctx *standard.DrawContext) (mx, my int, x, y, u float64) {
	x, y = ctx.UpperLeft()
	w, _ := ctx.Edge()
	u = float64(w)
	if u <= 0 {
		u = 1
	}
	return int(math.Round(x / u)), int(math.Round(y / u)), x, y, u
}

func (s *styledShape) Draw(ctx *standard.DrawContext) {
	mx, my, x, y, u := s.locate(ctx)
	if s.sym.isFinder(mx, my) {
		s.DrawFinder(ctx)
		return
	}
	if !visible(s.sym, s.lay, mx, my) {
		return
	}

	var p path
	p.dot(s.sch.Dots.Type, neighboursOf(s.sym, s.lay, mx, my), x, y, u)

	side := float64(s.sym.dim) * u
	ctx.SetColor(s.pal.dotColor(x+u/2, y+u/2, side))
	fillPath(ctx.Context, p, false)
}

func (s *styledShape) DrawFinder(ctx *standard.DrawContext) {
	mx, my, x, y, u := s.locate(ctx)
	if !s.sym.isFinderOrigin(mx, my) {
		return
	}

	var ring path
	ring.finderRing(s.sch.CornersSquare.Type, x, y, u)
	ctx.SetColor(s.pal.cornerSquare)
	fillPath(ctx.Context, ring, true)

	var dot path
	dot.finderDot(s.sch.CornersDot.Type, x, y, u)
	ctx.SetColor(s.pal.cornerDot)
	fillPath(ctx.Context, dot, false)
}

func fillPath(dc *gg.Context, p path, evenOdd bool) {
	dc.ClearPath()
	for _, op := range p {
		switch op.kind {
		case opMove:
			dc.MoveTo(op.pts[2].X, op.pts[2].Y)
		case opLine:
			dc.LineTo(op.pts[2].X, op.pts[2].Y)
		case opCubic:
			dc.CubicTo(op.pts[0].X, op.pts[0].Y, op.pts[1].X, op.pts[1].Y, op.pts[2].X, op.pts[2].Y)
		case opClose:
			dc.ClosePath()
		}
	}
	if evenOdd {
		dc.SetFillRuleEvenOdd()
		defer dc.SetFillRuleWinding()
	}
	dc.Fill()
}
