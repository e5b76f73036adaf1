package render

import (
	"fmt"
	"strings"
)

// Format is an export encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatWebP Format = "webp"
	FormatJPEG Format = "jpg"
)

// ParseFormat maps user input to a Format. "jpeg" is accepted as an alias.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG, FormatWebP, FormatJPEG:
		return f, nil
	case "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Ext is the file extension without the dot.
func (f Format) Ext() string { return string(f) }

// MIME is the content type of the encoded output.
func (f Format) MIME() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatWebP:
		return "image/webp"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}
