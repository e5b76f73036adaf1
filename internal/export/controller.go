// Package export turns the rendered symbol into downloads and clipboard
// payloads, and records successful downloads in the history.
package export

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/history"
	"github.com/cristianadrielbraun/qrstudio/internal/notify"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/validation"
)

const FilePrefix = "qrcode"

var (
	ErrInvalidContent = errors.New("content is not valid for its type")
	ErrNothingToCopy  = errors.New("no image available to copy")
)

type Notifier interface {
	Enqueue(message string, severity notify.Severity) int64
}

type HistoryLog interface {
	Add(ctx context.Context, content string, at time.Time) ([]history.Entry, error)
}

type Metrics interface {
	IncExports(format string, ok bool)
}

type Option func(*Controller)

func WithArchive(a Archive) Option {
	return func(c *Controller) { c.archive = a }
}

func WithMetrics(m Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller runs downloads and clipboard copies against one engine.
type Controller struct {
	engine  render.Engine
	toasts  Notifier
	history HistoryLog
	archive Archive
	metrics Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

func NewController(engine render.Engine, toasts Notifier, log HistoryLog, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		engine:  engine,
		toasts:  toasts,
		history: log,
		logger:  logger.With().Str("component", "export").Logger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName is the download name without extension.
func FileName(now time.Time) string {
	return FilePrefix + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// Download exports the current symbol. Invalid content is refused without
// a toast or a history entry.
func (c *Controller) Download(ctx context.Context, content string, ct qrconfig.ContentType, format render.Format) (*render.File, error) {
	if !validation.IsContentValid(content, ct) {
		return nil, ErrInvalidContent
	}

	now := c.now()
	file, err := c.engine.ExportFile(ctx, FileName(now), format)
	if err != nil {
		c.observe(format, false)
		c.logger.Error().Err(err).Str("format", string(format)).Msg("export failed")
		c.toasts.Enqueue("Failed to download QR code", notify.SeverityError)
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	c.observe(format, true)

	c.toasts.Enqueue(fmt.Sprintf("QR code downloaded as %s!", strings.ToUpper(format.Ext())), notify.SeveritySuccess)

	if _, err := c.history.Add(ctx, content, now); err != nil {
		c.logger.Warn().Err(err).Msg("failed to persist history")
	}

	if c.archive != nil {
		if err := c.archive.Store(ctx, file); err != nil {
			c.logger.Warn().Err(err).Str("file", file.Name).Msg("failed to archive export")
		}
	}

	return file, nil
}

// Copy places the current symbol as a PNG on the clipboard. Every failure,
// including a panicking clipboard, ends as an error toast.
func (c *Controller) Copy(ctx context.Context, clip Clipboard) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard panic: %v", r)
		}
		if err != nil {
			c.logger.Warn().Err(err).Msg("copy to clipboard failed")
			c.toasts.Enqueue("Failed to copy QR code", notify.SeverityError)
		}
	}()

	data, err := c.engine.ExportRawBytes(ctx, render.FormatPNG)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	if len(data) == 0 {
		return ErrNothingToCopy
	}

	if err := clip.Write(ctx, ClipboardItem{MIME: render.FormatPNG.MIME(), Data: data}); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	c.toasts.Enqueue("QR code copied to clipboard!", notify.SeveritySuccess)
	return nil
}

func (c *Controller) observe(format render.Format, ok bool) {
	if c.metrics != nil {
		c.metrics.IncExports(string(format), ok)
	}
}
