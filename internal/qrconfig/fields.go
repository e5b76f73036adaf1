package qrconfig

import (
	"fmt"

	"github.com/gookit/validate"
	"github.com/spf13/cast"
)

// Field names accepted by SetField. They match the JSON names of QRConfig.
const (
	FieldContent              = "content"
	FieldForegroundColor      = "foregroundColor"
	FieldBackgroundColor      = "backgroundColor"
	FieldErrorCorrectionLevel = "errorCorrectionLevel"
	FieldSizePx               = "sizePx"
	FieldMarginMode           = "marginMode"
	FieldDotStyle             = "dotStyle"
	FieldCornerSquareStyle    = "cornerSquareStyle"
	FieldCornerDotStyle       = "cornerDotStyle"
	FieldCornerSquareColor    = "cornerSquareColor"
	FieldCornerDotColor       = "cornerDotColor"
	FieldGradientEnabled      = "gradientEnabled"
	FieldGradientColor        = "gradientColor"
)

var fieldRules = validate.MS{
	FieldErrorCorrectionLevel: "required|in:L,M,Q,H",
	FieldSizePx:               "required|int|min:100|max:2000",
	FieldDotStyle:             "required|in:square,dots,rounded,extra-rounded,classy,classy-rounded",
	FieldCornerSquareStyle:    "required|in:square,dot,extra-rounded",
	FieldCornerDotStyle:       "required|in:square,dot",
}

// SetField returns a copy of cfg with one field replaced. cfg itself is left
// untouched, so callers never observe a half-applied edit.
//
// Colors are stored as given; only enum and size fields are checked.
func SetField(cfg QRConfig, name string, value any) (QRConfig, error) {
	next := cfg
	var err error

	switch name {
	case FieldContent:
		next.Content, err = cast.ToStringE(value)
	case FieldForegroundColor:
		next.ForegroundColor, err = cast.ToStringE(value)
	case FieldBackgroundColor:
		next.BackgroundColor, err = cast.ToStringE(value)
	case FieldCornerSquareColor:
		next.CornerSquareColor, err = cast.ToStringE(value)
	case FieldCornerDotColor:
		next.CornerDotColor, err = cast.ToStringE(value)
	case FieldGradientColor:
		next.GradientColor, err = cast.ToStringE(value)
	case FieldErrorCorrectionLevel:
		var s string
		s, err = cast.ToStringE(value)
		next.ErrorCorrectionLevel = ErrorCorrection(s)
	case FieldSizePx:
		next.SizePx, err = cast.ToIntE(value)
	case FieldMarginMode:
		next.MarginMode, err = cast.ToBoolE(value)
	case FieldGradientEnabled:
		next.GradientEnabled, err = cast.ToBoolE(value)
	case FieldDotStyle:
		var s string
		s, err = cast.ToStringE(value)
		next.DotStyle = DotStyle(s)
	case FieldCornerSquareStyle:
		var s string
		s, err = cast.ToStringE(value)
		next.CornerSquareStyle = CornerSquareStyle(s)
	case FieldCornerDotStyle:
		var s string
		s, err = cast.ToStringE(value)
		next.CornerDotStyle = CornerDotStyle(s)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
	}

	if err := Check(next); err != nil {
		return cfg, err
	}
	return next, nil
}

// Check validates the enum and size fields of cfg.
func Check(cfg QRConfig) error {
	v := validate.Map(map[string]any{
		FieldErrorCorrectionLevel: string(cfg.ErrorCorrectionLevel),
		FieldSizePx:               cfg.SizePx,
		FieldDotStyle:             string(cfg.DotStyle),
		FieldCornerSquareStyle:    string(cfg.CornerSquareStyle),
		FieldCornerDotStyle:       string(cfg.CornerDotStyle),
	})
	v.StringRules(fieldRules)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidValue, v.Errors.One())
	}
	return nil
}
