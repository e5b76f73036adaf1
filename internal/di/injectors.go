//go:build wireinject
// +build wireinject

package di

import (
	"context"

	wire "github.com/google/wire"

	"github.com/cristianadrielbraun/qrstudio/internal/app"
	"github.com/cristianadrielbraun/qrstudio/internal/cache"
	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/handlers"
	"github.com/cristianadrielbraun/qrstudio/internal/metrics"
	"github.com/cristianadrielbraun/qrstudio/internal/suggest"
)

func InitApp(ctx context.Context, flags config.Flags) (*app.App, func(), error) {

	wire.Build(
		ProvideConfig,
		ProvideLogger,
		metrics.NewProvider,
		cache.NewProvider,

		ProvideHistory,
		ProvideToasts,
		suggest.New,
		export.NewArchive,

		ProvideEngine,
		ProvideAdapter,
		ProvideExporter,
		ProvideRenderer,
		ProvideWorkspace,

		handlers.New,
		handlers.NewRouter,
		app.NewApp,
	)

	return nil, nil, nil
}
