package render

import (
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

const (
	// MarginWide is the quiet zone in pixels when margin mode is on.
	MarginWide = 20
	// MarginNarrow is the quiet zone in pixels when margin mode is off.
	MarginNarrow = 5

	LogoImageSize    = 0.4
	LogoMargin       = 8
	GradientRotation = 45.0
)

// ColorStop is one stop of a linear gradient, offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  string
}

// Gradient is a two stop linear gradient. Rotation is in degrees, 0 runs
// left to right and 45 runs from the top-left corner to the bottom-right.
type Gradient struct {
	Rotation float64
	Stops    [2]ColorStop
}

type DotsOptions struct {
	Color    string
	Type     qrconfig.DotStyle
	Gradient *Gradient
}

type BackgroundOptions struct {
	Color string
}

type CornerSquareOptions struct {
	Color string
	Type  qrconfig.CornerSquareStyle
}

type CornerDotOptions struct {
	Color string
	Type  qrconfig.CornerDotStyle
}

type ImageOptions struct {
	ImageSize          float64
	Margin             int
	HideBackgroundDots bool
}

// Schema is the option set handed to the engine. It carries everything
// needed to draw one symbol and nothing else.
type Schema struct {
	Data                 string
	Width                int
	Margin               int
	ErrorCorrectionLevel qrconfig.ErrorCorrection
	Image                *Logo
	Dots                 DotsOptions
	Background           BackgroundOptions
	CornersSquare        CornerSquareOptions
	CornersDot           CornerDotOptions
	ImageOptions         ImageOptions
}

// BuildSchema translates a configuration and optional logo into a Schema.
func BuildSchema(cfg qrconfig.QRConfig, logo *Logo) Schema {
	data := cfg.Content
	if data == "" {
		data = " "
	}

	margin := MarginNarrow
	if cfg.MarginMode {
		margin = MarginWide
	}

	s := Schema{
		Data:                 data,
		Width:                cfg.SizePx,
		Margin:               margin,
		ErrorCorrectionLevel: cfg.ErrorCorrectionLevel,
		Image:                logo,
		Dots: DotsOptions{
			Color: cfg.ForegroundColor,
			Type:  cfg.DotStyle,
		},
		Background:    BackgroundOptions{Color: cfg.BackgroundColor},
		CornersSquare: CornerSquareOptions{Color: cfg.CornerSquareColor, Type: cfg.CornerSquareStyle},
		CornersDot:    CornerDotOptions{Color: cfg.CornerDotColor, Type: cfg.CornerDotStyle},
		ImageOptions: ImageOptions{
			ImageSize:          LogoImageSize,
			Margin:             LogoMargin,
			HideBackgroundDots: true,
		},
	}

	if cfg.GradientEnabled {
		s.Dots.Gradient = &Gradient{
			Rotation: GradientRotation,
			Stops: [2]ColorStop{
				{Offset: 0, Color: cfg.ForegroundColor},
				{Offset: 1, Color: cfg.GradientColor},
			},
		}
	}
	return s
}

// Equal reports whether two schemas would produce the same drawing.
// Logos are compared by content digest.
func (s Schema) Equal(o Schema) bool {
	if !sameLogo(s.Image, o.Image) {
		return false
	}
	if (s.Dots.Gradient == nil) != (o.Dots.Gradient == nil) {
		return false
	}
	if s.Dots.Gradient != nil && *s.Dots.Gradient != *o.Dots.Gradient {
		return false
	}

	a, b := s, o
	a.Image, b.Image = nil, nil
	a.Dots.Gradient, b.Dots.Gradient = nil, nil
	return a == b
}

func sameLogo(a, b *Logo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Digest == b.Digest
}

// sizing clamps the requested width and margin to something drawable.
func (s Schema) sizing() (width, margin int) {
	width = s.Width
	if width <= 0 {
		width = qrconfig.DefaultSizePx
	}
	margin = s.Margin
	if margin < 0 {
		margin = 0
	}
	if margin > width/4 {
		margin = width / 4
	}
	return width, margin
}
