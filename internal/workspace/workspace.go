// Package workspace wires configuration, rendering, export, suggestions
// and notifications into the single session the page talks to.
//
// All state changes go through one mutex, so the engine only ever sees one
// writer. The suggestion round trip runs outside the lock and applies its
// result to whatever the state is when it returns.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/history"
	"github.com/cristianadrielbraun/qrstudio/internal/notify"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/suggest"
	"github.com/cristianadrielbraun/qrstudio/internal/validation"
)

var ErrSuggestionInFlight = errors.New("a style suggestion is already in progress")

// SuggestionMetrics counts suggestion outcomes.
type SuggestionMetrics interface {
	IncSuggestions(outcome string)
}

// Snapshot is the read model served to the page.
type Snapshot struct {
	State          qrconfig.State   `json:"state"`
	Valid          bool             `json:"valid"`
	Scanability    validation.Score `json:"scanability"`
	History        []history.Entry  `json:"history"`
	Toasts         []notify.Toast   `json:"toasts"`
	Suggesting     bool             `json:"suggesting"`
	PreviewVersion uint64           `json:"previewVersion"`
}

type Workspace struct {
	mu         sync.Mutex
	store      *qrconfig.Store
	adapter    *render.Adapter
	surface    *render.PreviewSurface
	exporter   *export.Controller
	toasts     *notify.Center
	history    *history.Log
	suggester  suggest.Suggester
	metrics    SuggestionMetrics
	logger     zerolog.Logger
	logo       *render.Logo
	suggesting atomic.Bool
}

// Deps are the collaborators a Workspace is built from.
type Deps struct {
	Adapter   *render.Adapter
	Surface   *render.PreviewSurface
	Exporter  *export.Controller
	Toasts    *notify.Center
	History   *history.Log
	Suggester suggest.Suggester
	Metrics   SuggestionMetrics
	Logger    zerolog.Logger
}

// New attaches the preview surface and draws the initial state.
func New(ctx context.Context, d Deps) (*Workspace, error) {
	w := &Workspace{
		store:     qrconfig.NewStore(qrconfig.InitialState()),
		adapter:   d.Adapter,
		surface:   d.Surface,
		exporter:  d.Exporter,
		toasts:    d.Toasts,
		history:   d.History,
		suggester: d.Suggester,
		metrics:   d.Metrics,
		logger:    d.Logger.With().Str("component", "workspace").Logger(),
	}

	if err := w.adapter.Attach(w.surface); err != nil {
		return nil, fmt.Errorf("attach preview: %w", err)
	}
	if err := w.render(ctx, w.store.State(), nil); err != nil {
		return nil, err
	}
	return w, nil
}

// render pushes st to the adapter. Callers hold mu.
func (w *Workspace) render(ctx context.Context, st qrconfig.State, logo *render.Logo) error {
	if _, err := w.adapter.Sync(ctx, st.Config, logo); err != nil {
		w.logger.Error().Err(err).Msg("render failed")
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// dispatch applies an action with logo as the center image. The candidate
// state is drawn first and only committed once the engine holds it, so the
// store and the engine never disagree. Callers hold mu.
func (w *Workspace) dispatch(ctx context.Context, a qrconfig.Action, logo *render.Logo) error {
	_, _, err := w.store.DispatchIf(a, func(next qrconfig.State) error {
		return w.render(ctx, next, logo)
	})
	if err != nil {
		return err
	}
	w.logo = logo
	return nil
}

func (w *Workspace) do(ctx context.Context, a qrconfig.Action) (Snapshot, error) {
	w.mu.Lock()
	err := w.dispatch(ctx, a, w.logo)
	w.mu.Unlock()
	return w.Snapshot(), err
}

// Snapshot returns the current state with its derived values.
func (w *Workspace) Snapshot() Snapshot {
	st := w.store.State()
	d := validation.Derive(st)
	_, version, _ := w.surface.Frame()

	return Snapshot{
		State:          st,
		Valid:          d.Valid,
		Scanability:    d.Scanability,
		History:        w.history.Entries(),
		Toasts:         w.toasts.Visible(),
		Suggesting:     w.suggesting.Load(),
		PreviewVersion: version,
	}
}

func (w *Workspace) SetField(ctx context.Context, name string, value any) (Snapshot, error) {
	return w.do(ctx, qrconfig.SetFieldAction{Name: name, Value: value})
}

func (w *Workspace) SetContentType(ctx context.Context, t qrconfig.ContentType) (Snapshot, error) {
	return w.do(ctx, qrconfig.SetContentTypeAction{Type: t})
}

// SetLogo decodes and attaches a center image.
func (w *Workspace) SetLogo(ctx context.Context, name string, data []byte) (Snapshot, error) {
	logo, err := render.DecodeLogo(name, data)
	if err != nil {
		w.toasts.Enqueue("Could not read the logo image", notify.SeverityError)
		return w.Snapshot(), err
	}

	w.mu.Lock()
	err = w.dispatch(ctx, qrconfig.SetLogoAction{Logo: qrconfig.LogoRef{
		Name:   logo.Name,
		MIME:   logo.MIME,
		Size:   logo.Size,
		Digest: logo.Digest,
	}}, logo)
	w.mu.Unlock()

	return w.Snapshot(), err
}

func (w *Workspace) ClearLogo(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	err := w.dispatch(ctx, qrconfig.ClearLogoAction{}, nil)
	w.mu.Unlock()

	return w.Snapshot(), err
}

// Reset restores the initial configuration and drops the logo.
func (w *Workspace) Reset(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	err := w.dispatch(ctx, qrconfig.ResetAction{}, nil)
	w.mu.Unlock()

	return w.Snapshot(), err
}

// Suggest asks the suggester for a style and applies it. Only one request
// runs at a time; a second trigger gets ErrSuggestionInFlight.
func (w *Workspace) Suggest(ctx context.Context) (Snapshot, error) {
	if !w.suggesting.CompareAndSwap(false, true) {
		w.observe("in_flight")
		return w.Snapshot(), ErrSuggestionInFlight
	}
	content := w.store.State().Config.Content
	s, err := w.suggester.Suggest(ctx, content)
	if err != nil {
		w.suggesting.Store(false)
		w.observe("error")
		w.logger.Warn().Err(err).Msg("style suggestion failed")
		w.toasts.Enqueue("Failed to get AI style suggestion", notify.SeverityError)
		return w.Snapshot(), err
	}

	w.mu.Lock()
	err = w.dispatch(ctx, qrconfig.ApplySuggestionAction{Suggestion: s}, w.logo)
	w.mu.Unlock()
	w.suggesting.Store(false)
	if err != nil {
		w.observe("error")
		return w.Snapshot(), err
	}

	w.observe("ok")
	w.toasts.Enqueue("AI style applied!", notify.SeveritySuccess)
	return w.Snapshot(), nil
}

func (w *Workspace) observe(outcome string) {
	if w.metrics != nil {
		w.metrics.IncSuggestions(outcome)
	}
}

// Download exports the current symbol in format.
func (w *Workspace) Download(ctx context.Context, format render.Format) (*render.File, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := w.store.State()
	return w.exporter.Download(ctx, st.Config.Content, st.ContentType, format)
}

// Copy writes the current symbol to clip.
func (w *Workspace) Copy(ctx context.Context, clip export.Clipboard) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.exporter.Copy(ctx, clip)
}

// Preview returns the latest PNG frame and its version.
func (w *Workspace) Preview() ([]byte, uint64, bool) {
	return w.surface.Frame()
}

// Notify enqueues a toast on behalf of the page.
func (w *Workspace) Notify(message string, severity notify.Severity) int64 {
	return w.toasts.Enqueue(message, severity)
}

func (w *Workspace) Toasts() []notify.Toast {
	return w.toasts.Visible()
}

func (w *Workspace) DismissToast(id int64) bool {
	return w.toasts.Dismiss(id)
}

func (w *Workspace) History() []history.Entry {
	return w.history.Entries()
}

// Close stops pending toast timers.
func (w *Workspace) Close() {
	w.toasts.Close()
}
