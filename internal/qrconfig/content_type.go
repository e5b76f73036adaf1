package qrconfig

import "fmt"

// ContentType groups the content input in the UI. It never changes how
// QRConfig.Content is encoded: selecting "email" does not build a mailto: payload.
type ContentType string

const (
	ContentURL   ContentType = "url"
	ContentText  ContentType = "text"
	ContentEmail ContentType = "email"
	ContentPhone ContentType = "phone"
	ContentVCard ContentType = "vcard"
)

// ContentTypes lists the selectable types in display order.
var ContentTypes = []ContentType{ContentURL, ContentText, ContentEmail, ContentPhone, ContentVCard}

// ParseContentType validates a raw content type name.
func ParseContentType(s string) (ContentType, error) {
	for _, t := range ContentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
}
