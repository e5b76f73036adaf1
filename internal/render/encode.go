package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
	xdraw "golang.org/x/image/draw"
)

const jpegQuality = 92

// Encode serializes the frame in the requested format.
func (f *Frame) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatSVG:
		return f.svg(), nil
	case FormatPNG:
		if err := png.Encode(&buf, f.Image); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(&buf, f.Image, nil); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
	case FormatJPEG:
		// JPEG has no alpha, flatten onto the background first.
		flat := image.NewRGBA(f.Image.Bounds())
		bg := f.pal.bg
		if f.pal.transparent() {
			bg = white
		}
		xdraw.Draw(flat, flat.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
		xdraw.Draw(flat, flat.Bounds(), f.Image, f.Image.Bounds().Min, xdraw.Over)
		if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// Render rasterizes a schema and encodes it in one step.
func Render(ctx context.Context, s Schema, format Format) ([]byte, error) {
	f, err := Rasterize(ctx, s)
	if err != nil {
		return nil, err
	}
	return f.Encode(format)
}
