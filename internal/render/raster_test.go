package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

func squareConfig() qrconfig.QRConfig {
	cfg := qrconfig.Default()
	cfg.DotStyle = qrconfig.DotSquare
	cfg.CornerSquareStyle = qrconfig.CornerSquareSquare
	cfg.CornerDotStyle = qrconfig.CornerDotSquare
	return cfg
}

func testLogo(t *testing.T, w, h int) *Logo {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	logo, err := DecodeLogo("logo.png", buf.Bytes())
	require.NoError(t, err)
	return logo
}

func TestRasterize_ExactSizeAndFinder(t *testing.T) {
	f, err := Rasterize(context.Background(), BuildSchema(squareConfig(), nil))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 300, 300), f.Image.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, f.Image.RGBAAt(2, 2), "margin keeps the background")

	u := f.lay.module
	c := f.lay.margin + int(3.5*u)
	assert.Less(t, f.Image.RGBAAt(c, c).R, uint8(64), "finder center is dark")
}

func TestRasterize_AllStyles(t *testing.T) {
	for _, dot := range []qrconfig.DotStyle{
		qrconfig.DotSquare, qrconfig.DotDots, qrconfig.DotRounded,
		qrconfig.DotExtraRounded, qrconfig.DotClassy, qrconfig.DotClassyRounded,
	} {
		cfg := qrconfig.Default()
		cfg.DotStyle = dot
		cfg.SizePx = qrconfig.MinSizePx
		f, err := Rasterize(context.Background(), BuildSchema(cfg, nil))
		require.NoError(t, err, dot)
		assert.Equal(t, 100, f.Image.Bounds().Dx(), dot)
	}
}

func TestRasterize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rasterize(ctx, BuildSchema(qrconfig.Default(), nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRasterize_LogoHidesDots(t *testing.T) {
	cfg := squareConfig()
	cfg.ErrorCorrectionLevel = qrconfig.ErrorCorrectionHigh
	f, err := Rasterize(context.Background(), BuildSchema(cfg, testLogo(t, 40, 20)))
	require.NoError(t, err)

	require.False(t, f.lay.logo.empty())
	assert.InDelta(t, f.lay.side*0.4, f.lay.logo.x1-f.lay.logo.x0, 1e-9, "long side fills the size ratio")
	assert.InDelta(t, f.lay.side*0.2, f.lay.logo.y1-f.lay.logo.y0, 1e-9, "aspect ratio is kept")

	hidden := 0
	for y := 0; y < f.sym.dim; y++ {
		for x := 0; x < f.sym.dim; x++ {
			if f.lay.isHidden(x, y) {
				hidden++
				assert.False(t, f.sym.isFinder(x, y))
			}
		}
	}
	assert.Positive(t, hidden)

	center := f.lay.width / 2
	px := f.Image.RGBAAt(center, center)
	assert.Greater(t, px.R, uint8(200))
	assert.Less(t, px.G, uint8(60), "logo is drawn over the center")
}

func TestFrameEncode_Formats(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.SizePx = 200
	f, err := Rasterize(context.Background(), BuildSchema(cfg, nil))
	require.NoError(t, err)

	data, err := f.Encode(FormatPNG)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	data, err = f.Encode(FormatJPEG)
	require.NoError(t, err)
	img, err = jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	data, err = f.Encode(FormatWebP)
	require.NoError(t, err)
	img, err = webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = f.Encode(Format("bmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFrameEncode_SVG(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.GradientEnabled = true
	f, err := Rasterize(context.Background(), BuildSchema(cfg, testLogo(t, 10, 10)))
	require.NoError(t, err)

	data, err := f.Encode(FormatSVG)
	require.NoError(t, err)
	svg := string(data)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `width="300" height="300"`)
	assert.Contains(t, svg, `<linearGradient id="dots-gradient"`)
	assert.Contains(t, svg, `stop-color="#4f46e5"`)
	assert.Contains(t, svg, `fill="url(#dots-gradient)"`)
	assert.Contains(t, svg, `fill-rule="evenodd"`)
	assert.Contains(t, svg, `translate(20 20)`)
	assert.Contains(t, svg, `href="data:image/png;base64,`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestFrameEncode_SVGWithoutGradientOrLogo(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.ForegroundColor = "#123456"
	f, err := Rasterize(context.Background(), BuildSchema(cfg, nil))
	require.NoError(t, err)

	data, err := f.Encode(FormatSVG)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "linearGradient")
	assert.NotContains(t, string(data), "<image")
	assert.Contains(t, string(data), `<path fill="#123456"`)
}

func TestRender_EmptyContentStillEncodes(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.Content = ""
	data, err := Render(context.Background(), BuildSchema(cfg, nil), FormatPNG)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
