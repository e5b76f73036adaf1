// Package app runs the HTTP server for the lifetime of a context.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	termqr "github.com/skip2/go-qrcode"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	conf   *config.Config
	logger zerolog.Logger
	server *http.Server
	ws     *workspace.Workspace
	banner io.Writer
}

func NewApp(conf *config.Config, logger zerolog.Logger, router *gin.Engine, ws *workspace.Workspace) *App {
	return &App{
		conf:   conf,
		logger: logger.With().Str("component", "app").Logger(),
		ws:     ws,
		server: &http.Server{
			Addr:         conf.Address(),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.server.Handler }

// SetBannerOutput enables the terminal QR banner on w.
func (a *App) SetBannerOutput(w io.Writer) { a.banner = w }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.server.Addr).Msg("listening")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	if a.conf.Server.Banner && a.banner != nil {
		url := a.publicURL()
		if b, err := Banner(url); err != nil {
			a.logger.Warn().Err(err).Msg("banner")
		} else {
			fmt.Fprintf(a.banner, "%s\n%s\n", b, url)
		}
	}

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if a.ws != nil {
		a.ws.Close()
	}
	a.logger.Info().Msg("gracefully stopped")
	return nil
}

func (a *App) publicURL() string {
	if a.conf.Server.BaseURL != "" {
		return a.conf.Server.BaseURL
	}
	host := a.conf.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s", config.JoinHostPort(host, a.conf.Server.Port))
}

// Banner renders url as a QR code made of terminal block characters.
func Banner(url string) (string, error) {
	q, err := termqr.New(url, termqr.Low)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(false), nil
}
