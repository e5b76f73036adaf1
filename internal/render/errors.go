package render

import "errors"

var (
	// ErrUnsupportedFormat is returned for export formats the engine cannot encode.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNothingRendered is returned when exporting before the first Configure.
	ErrNothingRendered = errors.New("nothing has been rendered yet")
	// ErrInvalidLogo is returned when an uploaded logo cannot be decoded.
	ErrInvalidLogo = errors.New("invalid logo image")
	// ErrEncodeFailed wraps failures of the upstream QR encoder.
	ErrEncodeFailed = errors.New("failed to encode QR code")
)
