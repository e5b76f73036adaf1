package export

import (
	"context"
	"encoding/base64"
	"sync"
)

// ClipboardItem is one typed payload to place on the clipboard.
type ClipboardItem struct {
	MIME string
	Data []byte
}

// Clipboard is a destination that accepts image payloads.
type Clipboard interface {
	Write(ctx context.Context, item ClipboardItem) error
}

// DataURIClipboard captures the item as a data URI. The page writes it to
// the browser clipboard itself.
type DataURIClipboard struct {
	mu   sync.Mutex
	item *ClipboardItem
}

func (d *DataURIClipboard) Write(_ context.Context, item ClipboardItem) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.item = &item
	return nil
}

// DataURI returns the written item, or "" if nothing was written.
func (d *DataURIClipboard) DataURI() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.item == nil {
		return ""
	}
	return "data:" + d.item.MIME + ";base64," + base64.StdEncoding.EncodeToString(d.item.Data)
}
