package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

func TestBuildSchema_Defaults(t *testing.T) {
	cfg := qrconfig.Default()
	s := BuildSchema(cfg, nil)

	assert.Equal(t, cfg.Content, s.Data)
	assert.Equal(t, cfg.SizePx, s.Width)
	assert.Equal(t, MarginWide, s.Margin)
	assert.Equal(t, qrconfig.ErrorCorrectionQuartile, s.ErrorCorrectionLevel)
	assert.Nil(t, s.Image)
	assert.Nil(t, s.Dots.Gradient)
	assert.Equal(t, cfg.ForegroundColor, s.Dots.Color)
	assert.Equal(t, cfg.DotStyle, s.Dots.Type)
	assert.Equal(t, cfg.BackgroundColor, s.Background.Color)
	assert.Equal(t, cfg.CornerSquareStyle, s.CornersSquare.Type)
	assert.Equal(t, cfg.CornerDotColor, s.CornersDot.Color)
	assert.Equal(t, ImageOptions{ImageSize: 0.4, Margin: 8, HideBackgroundDots: true}, s.ImageOptions)
}

func TestBuildSchema_EmptyContentBecomesSpace(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.Content = ""
	assert.Equal(t, " ", BuildSchema(cfg, nil).Data)
}

func TestBuildSchema_NarrowMargin(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.MarginMode = false
	assert.Equal(t, MarginNarrow, BuildSchema(cfg, nil).Margin)
}

func TestBuildSchema_Gradient(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.GradientEnabled = true
	cfg.ForegroundColor = "#111111"
	cfg.GradientColor = "#222222"

	g := BuildSchema(cfg, nil).Dots.Gradient
	require.NotNil(t, g)
	assert.Equal(t, 45.0, g.Rotation)
	assert.Equal(t, ColorStop{Offset: 0, Color: "#111111"}, g.Stops[0])
	assert.Equal(t, ColorStop{Offset: 1, Color: "#222222"}, g.Stops[1])
}

func TestSchemaEqual(t *testing.T) {
	cfg := qrconfig.Default()
	cfg.GradientEnabled = true
	a := BuildSchema(cfg, &Logo{Digest: "abc"})
	b := BuildSchema(cfg, &Logo{Digest: "abc"})
	assert.True(t, a.Equal(b), "separately built gradients and logos with the same digest compare equal")

	c := BuildSchema(cfg, &Logo{Digest: "def"})
	assert.False(t, a.Equal(c))

	cfg.GradientColor = "#ff0000"
	assert.False(t, a.Equal(BuildSchema(cfg, &Logo{Digest: "abc"})))

	cfg.GradientEnabled = false
	assert.False(t, a.Equal(BuildSchema(cfg, &Logo{Digest: "abc"})))
	assert.False(t, BuildSchema(cfg, nil).Equal(BuildSchema(cfg, &Logo{Digest: "abc"})))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, "SVG": FormatSVG, " webp ": FormatWebP, "jpeg": FormatJPEG, "jpg": FormatJPEG} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, white, parseColor("#ffffff", black))
	assert.Equal(t, black, parseColor("not-a-color", black))
	assert.Equal(t, black, parseColor("#12345", black))
	assert.Equal(t, white, parseColor("", white))
	assert.Equal(t, uint8(0), parseColor("transparent", white).A)
	assert.Equal(t, "#4f46e5", hexColor(parseColor("4F46E5", black)))
}
