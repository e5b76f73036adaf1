package qrconfig

import "errors"

var (
	// ErrUnknownField is returned by SetField for a field name QRConfig does not have.
	ErrUnknownField = errors.New("unknown configuration field")
	// ErrInvalidValue is returned when a value cannot be coerced or fails the field rules.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrUnknownContentType is returned for content types outside ContentTypes.
	ErrUnknownContentType = errors.New("unknown content type")
)
