package render

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// svgNum formats a coordinate with at most two decimals.
func svgNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func writePathData(b *strings.Builder, p path) {
	for _, op := range p {
		switch op.kind {
		case opMove:
			fmt.Fprintf(b, "M%s %s", svgNum(op.pts[2].X), svgNum(op.pts[2].Y))
		case opLine:
			fmt.Fprintf(b, "L%s %s", svgNum(op.pts[2].X), svgNum(op.pts[2].Y))
		case opCubic:
			fmt.Fprintf(b, "C%s %s %s %s %s %s",
				svgNum(op.pts[0].X), svgNum(op.pts[0].Y),
				svgNum(op.pts[1].X), svgNum(op.pts[1].Y),
				svgNum(op.pts[2].X), svgNum(op.pts[2].Y))
		case opClose:
			b.WriteString("Z")
		}
	}
}

// svg emits the frame as a vector document built from the same geometry
// the raster path uses.
func (f *Frame) svg() []byte {
	var b strings.Builder
	w := f.lay.width
	u := f.lay.module

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, w, w, w)

	dotFill := hexColor(f.pal.fg)
	if g := f.pal.gradient; g != nil {
		x1, y1, x2, y2 := gradientLine(g.Rotation, f.lay.side)
		b.WriteString("<defs>\n")
		fmt.Fprintf(&b, `<linearGradient id="dots-gradient" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			svgNum(x1), svgNum(y1), svgNum(x2), svgNum(y2))
		for i, stop := range g.Stops {
			fmt.Fprintf(&b, `<stop offset="%s" stop-color="%s"/>`+"\n", svgNum(stop.Offset), hexColor(f.pal.stops[i]))
		}
		b.WriteString("</linearGradient>\n</defs>\n")
		dotFill = "url(#dots-gradient)"
	}

	if !f.pal.transparent() {
		fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", w, w, hexColor(f.pal.bg))
	}

	fmt.Fprintf(&b, `<g transform="translate(%d %d)">`+"\n", f.lay.margin, f.lay.margin)

	var dots path
	for y := 0; y < f.sym.dim; y++ {
		for x := 0; x < f.sym.dim; x++ {
			if !visible(f.sym, f.lay, x, y) {
				continue
			}
			dots.dot(f.Schema.Dots.Type, neighboursOf(f.sym, f.lay, x, y), float64(x)*u, float64(y)*u, u)
		}
	}
	if len(dots) > 0 {
		fmt.Fprintf(&b, `<path fill="%s" d="`, dotFill)
		writePathData(&b, dots)
		b.WriteString(`"/>` + "\n")
	}

	var rings, centers path
	for _, o := range f.sym.finderOrigins() {
		ox, oy := float64(o[0])*u, float64(o[1])*u
		rings.finderRing(f.Schema.CornersSquare.Type, ox, oy, u)
		centers.finderDot(f.Schema.CornersDot.Type, ox, oy, u)
	}
	fmt.Fprintf(&b, `<path fill="%s" fill-rule="evenodd" d="`, hexColor(f.pal.cornerSquare))
	writePathData(&b, rings)
	b.WriteString(`"/>` + "\n")
	fmt.Fprintf(&b, `<path fill="%s" d="`, hexColor(f.pal.cornerDot))
	writePathData(&b, centers)
	b.WriteString(`"/>` + "\n")

	if logo := f.Schema.Image; logo != nil && !f.lay.logo.empty() && len(logo.PNG) > 0 {
		l := f.lay.logo
		fmt.Fprintf(&b, `<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="data:image/png;base64,%s"/>`+"\n",
			svgNum(l.x0), svgNum(l.y0), svgNum(l.x1-l.x0), svgNum(l.y1-l.y0),
			base64.StdEncoding.EncodeToString(logo.PNG))
	}

	b.WriteString("</g>\n</svg>\n")
	return []byte(b.String())
}
