package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// File is an exported image ready to be handed to the user.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Surface is the display target an engine draws previews onto.
type Surface interface {
	Clear()
	Present(png []byte) error
}

// Engine draws a schema and exports what it last drew.
type Engine interface {
	Configure(ctx context.Context, s Schema) error
	Attach(surface Surface) error
	ExportFile(ctx context.Context, name string, format Format) (*File, error)
	// ExportRawBytes returns nil bytes when nothing has been drawn yet.
	ExportRawBytes(ctx context.Context, format Format) ([]byte, error)
}

// QREngine is the Engine backed by go-qrcode and the standard writer.
type QREngine struct {
	mu      sync.Mutex
	logger  zerolog.Logger
	frame   *Frame
	surface Surface
}

var _ Engine = (*QREngine)(nil)

func NewQREngine(logger zerolog.Logger) *QREngine {
	return &QREngine{logger: logger.With().Str("component", "render").Logger()}
}

func (e *QREngine) Configure(ctx context.Context, s Schema) error {
	frame, err := Rasterize(ctx, s)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.frame = frame
	e.logger.Debug().
		Int("width", frame.lay.width).
		Int("modules", frame.sym.dim).
		Bool("logo", s.Image != nil).
		Msg("symbol rendered")

	return e.present()
}

func (e *QREngine) Attach(surface Surface) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.surface = surface
	return e.present()
}

// present pushes the current frame to the attached surface. Callers hold mu.
func (e *QREngine) present() error {
	if e.surface == nil || e.frame == nil {
		return nil
	}
	data, err := e.frame.Encode(FormatPNG)
	if err != nil {
		return err
	}
	if err := e.surface.Present(data); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

func (e *QREngine) ExportFile(ctx context.Context, name string, format Format) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	frame := e.frame
	e.mu.Unlock()

	if frame == nil {
		return nil, ErrNothingRendered
	}

	data, err := frame.Encode(format)
	if err != nil {
		return nil, err
	}
	return &File{Name: name + "." + format.Ext(), MIME: format.MIME(), Data: data}, nil
}

func (e *QREngine) ExportRawBytes(ctx context.Context, format Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	frame := e.frame
	e.mu.Unlock()

	if frame == nil {
		return nil, nil
	}
	return frame.Encode(format)
}
