package render

import "sync"

// PreviewSurface keeps the latest presented PNG in memory so the page can
// fetch it.
type PreviewSurface struct {
	mu       sync.RWMutex
	png      []byte
	version  uint64
	presents int
}

var _ Surface = (*PreviewSurface)(nil)

func NewPreviewSurface() *PreviewSurface {
	return &PreviewSurface{}
}

func (p *PreviewSurface) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.png = nil
	p.version++
}

func (p *PreviewSurface) Present(png []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.png = append([]byte(nil), png...)
	p.version++
	p.presents++
	return nil
}

// Frame returns the current image and a version that changes on every
// Present or Clear. ok is false while the surface is empty.
func (p *PreviewSurface) Frame() (png []byte, version uint64, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.png, p.version, p.png != nil
}

// Presents counts frames drawn onto this surface.
func (p *PreviewSurface) Presents() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.presents
}
