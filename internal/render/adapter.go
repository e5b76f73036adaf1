package render

import (
	"context"
	"sync"
	"time"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

// RenderObserver receives the duration of each engine redraw.
type RenderObserver func(time.Duration)

type AdapterOption func(*Adapter)

func WithRenderObserver(o RenderObserver) AdapterOption {
	return func(a *Adapter) { a.observe = o }
}

// Adapter binds one Engine to the configuration. It redraws only when the
// derived schema actually changes, so every edit costs at most one draw.
type Adapter struct {
	mu      sync.Mutex
	engine  Engine
	surface Surface
	last    *Schema
	renders int
	observe RenderObserver
}

func NewAdapter(engine Engine, opts ...AdapterOption) *Adapter {
	a := &Adapter{engine: engine}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Engine returns the engine the adapter owns. It never changes.
func (a *Adapter) Engine() Engine { return a.engine }

// Attach connects the engine to a surface. Attaching the same surface again
// is a no-op; a different surface replaces the old one, which is cleared
// first so two previews never overlap.
func (a *Adapter) Attach(surface Surface) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.surface == surface {
		return nil
	}
	if a.surface != nil {
		a.surface.Clear()
	}
	surface.Clear()

	if err := a.engine.Attach(surface); err != nil {
		return err
	}
	a.surface = surface
	return nil
}

// Sync pushes the configuration to the engine. It reports whether a redraw
// happened.
func (a *Adapter) Sync(ctx context.Context, cfg qrconfig.QRConfig, logo *Logo) (bool, error) {
	schema := BuildSchema(cfg, logo)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last != nil && a.last.Equal(schema) {
		return false, nil
	}

	start := time.Now()
	if err := a.engine.Configure(ctx, schema); err != nil {
		return false, err
	}
	if a.observe != nil {
		a.observe(time.Since(start))
	}

	a.last = &schema
	a.renders++
	return true, nil
}

// Renders counts redraws issued to the engine.
func (a *Adapter) Renders() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.renders
}
