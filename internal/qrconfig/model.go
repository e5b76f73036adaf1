package qrconfig

// ErrorCorrection is the QR error-correction level.
type ErrorCorrection string

const (
	ErrorCorrectionLow      ErrorCorrection = "L"
	ErrorCorrectionMedium   ErrorCorrection = "M"
	ErrorCorrectionQuartile ErrorCorrection = "Q"
	ErrorCorrectionHigh     ErrorCorrection = "H"
)

// DotStyle is the shape used for data modules.
type DotStyle string

const (
	DotSquare        DotStyle = "square"
	DotDots          DotStyle = "dots"
	DotRounded       DotStyle = "rounded"
	DotExtraRounded  DotStyle = "extra-rounded"
	DotClassy        DotStyle = "classy"
	DotClassyRounded DotStyle = "classy-rounded"
)

// CornerSquareStyle is the shape of the 7x7 finder ring.
type CornerSquareStyle string

const (
	CornerSquareSquare       CornerSquareStyle = "square"
	CornerSquareDot          CornerSquareStyle = "dot"
	CornerSquareExtraRounded CornerSquareStyle = "extra-rounded"
)

// CornerDotStyle is the shape of the 3x3 finder center.
type CornerDotStyle string

const (
	CornerDotSquare CornerDotStyle = "square"
	CornerDotDot    CornerDotStyle = "dot"
)

const (
	MinSizePx     = 100
	MaxSizePx     = 2000
	DefaultSizePx = 300
)

// QRConfig is the full content and styling record. It is treated as an
// immutable value: every edit produces a new record.
type QRConfig struct {
	Content              string            `json:"content"`
	ForegroundColor      string            `json:"foregroundColor"`
	BackgroundColor      string            `json:"backgroundColor"`
	ErrorCorrectionLevel ErrorCorrection   `json:"errorCorrectionLevel"`
	SizePx               int               `json:"sizePx"`
	MarginMode           bool              `json:"marginMode"`
	DotStyle             DotStyle          `json:"dotStyle"`
	CornerSquareStyle    CornerSquareStyle `json:"cornerSquareStyle"`
	CornerDotStyle       CornerDotStyle    `json:"cornerDotStyle"`
	CornerSquareColor    string            `json:"cornerSquareColor"`
	CornerDotColor       string            `json:"cornerDotColor"`
	GradientEnabled      bool              `json:"gradientEnabled"`
	GradientColor        string            `json:"gradientColor"`
}

// Default returns the configuration a new session starts with.
func Default() QRConfig {
	return QRConfig{
		Content:              "https://qrcreator.link",
		ForegroundColor:      "#000000",
		BackgroundColor:      "#ffffff",
		ErrorCorrectionLevel: ErrorCorrectionQuartile,
		SizePx:               DefaultSizePx,
		MarginMode:           true,
		DotStyle:             DotRounded,
		CornerSquareStyle:    CornerSquareExtraRounded,
		CornerDotStyle:       CornerDotDot,
		CornerSquareColor:    "#000000",
		CornerDotColor:       "#000000",
		GradientEnabled:      false,
		GradientColor:        "#4f46e5",
	}
}
