package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/yeqown/go-qrcode/writer/standard"
	xdraw "golang.org/x/image/draw"
)

// maxModulePx bounds the intermediate module size, uint8 in the writer.
const maxModulePx = 255

// Frame is one rendered symbol: the raster image plus the geometry needed
// to re-emit it as SVG.
type Frame struct {
	Schema Schema
	Image  *image.RGBA

	sym *symbol
	lay layout
	pal palette
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

// Rasterize draws the schema at its exact pixel width.
func Rasterize(ctx context.Context, s Schema) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	qrc, sym, err := encode(s)
	if err != nil {
		return nil, err
	}

	f := &Frame{Schema: s, sym: sym, lay: newLayout(s, sym), pal: newPalette(s)}

	// Draw at twice the target module size, then scale down for smooth edges.
	unit := int(math.Ceil(f.lay.module)) * 2
	if unit < 4 {
		unit = 4
	}
	if unit > maxModulePx {
		unit = maxModulePx
	}

	opts := []standard.ImageOption{
		standard.WithQRWidth(uint8(unit)),
		standard.WithBorderWidth(0),
		standard.WithCustomShape(&styledShape{sym: sym, lay: f.lay, pal: f.pal, sch: s}),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	}
	if f.pal.transparent() {
		opts = append(opts, standard.WithBgTransparent())
	} else {
		opts = append(opts, standard.WithBgColor(f.pal.bg))
	}

	var buf bytes.Buffer
	writer := standard.NewWithWriter(bufferCloser{&buf}, opts...)
	if err := qrc.Save(writer); err != nil {
		return nil, fmt.Errorf("draw symbol: %w", err)
	}

	symImg, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode symbol: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, f.lay.width, f.lay.width))
	if !f.pal.transparent() {
		xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(f.pal.bg), image.Point{}, xdraw.Src)
	}

	m := f.lay.margin
	target := image.Rect(m, m, f.lay.width-m, f.lay.width-m)
	xdraw.CatmullRom.Scale(canvas, target, symImg, symImg.Bounds(), xdraw.Over, nil)

	if s.Image != nil && !f.lay.logo.empty() {
		overlayLogo(canvas, s.Image, f.lay)
	}

	f.Image = canvas
	return f, nil
}

func overlayLogo(canvas *image.RGBA, logo *Logo, l layout) {
	w := uint(math.Round(l.logo.x1 - l.logo.x0))
	h := uint(math.Round(l.logo.y1 - l.logo.y0))
	if w == 0 || h == 0 {
		return
	}

	scaled := resize.Thumbnail(w, h, logo.Image, resize.Lanczos3)

	dc := gg.NewContextForRGBA(canvas)
	cx := float64(l.margin) + (l.logo.x0+l.logo.x1)/2
	cy := float64(l.margin) + (l.logo.y0+l.logo.y1)/2
	dc.DrawImageAnchored(scaled, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
}
