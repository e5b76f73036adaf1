package di

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/cache"
	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/history"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/metrics"
	"github.com/cristianadrielbraun/qrstudio/internal/notify"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/suggest"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

func ProvideConfig(flags config.Flags) (*config.Config, error) {
	return config.Load(flags)
}

func ProvideLogger(conf *config.Config) zerolog.Logger {
	return logger.New(conf)
}

// ProvideHistory opens the configured store and loads what it holds.
func ProvideHistory(ctx context.Context, conf *config.Config, log zerolog.Logger) (*history.Log, func(), error) {
	store, err := history.NewStore(conf, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	switch s := store.(type) {
	case io.Closer:
		cleanup = func() {
			if err := s.Close(); err != nil {
				log.Warn().Err(err).Msg("close history store")
			}
		}
	case interface{ Close() }:
		cleanup = s.Close
	}

	hist := history.NewLog(store, log)
	hist.Load(ctx)
	return hist, cleanup, nil
}

func ProvideToasts(conf *config.Config) (*notify.Center, func()) {
	c := notify.NewCenter(notify.WithTTL(conf.Notify.TTL))
	return c, c.Close
}

func ProvideEngine(log zerolog.Logger) *render.QREngine {
	return render.NewQREngine(log)
}

func ProvideAdapter(engine *render.QREngine, m metrics.Provider) *render.Adapter {
	return render.NewAdapter(engine, render.WithRenderObserver(m.ObserveRenderDuration))
}

func ProvideExporter(engine *render.QREngine, toasts *notify.Center, hist *history.Log, log zerolog.Logger, archive export.Archive, m metrics.Provider) *export.Controller {
	opts := []export.Option{export.WithMetrics(m)}
	if archive != nil {
		opts = append(opts, export.WithArchive(archive))
	}
	return export.NewController(engine, toasts, hist, log, opts...)
}

func ProvideRenderer(c cache.Provider, m metrics.Provider) *render.CachedRenderer {
	return render.NewCachedRenderer(c, m)
}

func ProvideWorkspace(ctx context.Context, adapter *render.Adapter, exporter *export.Controller, toasts *notify.Center, hist *history.Log, s suggest.Suggester, m metrics.Provider, log zerolog.Logger) (*workspace.Workspace, error) {
	return workspace.New(ctx, workspace.Deps{
		Adapter:   adapter,
		Surface:   render.NewPreviewSurface(),
		Exporter:  exporter,
		Toasts:    toasts,
		History:   hist,
		Suggester: s,
		Metrics:   m,
		Logger:    log,
	})
}
