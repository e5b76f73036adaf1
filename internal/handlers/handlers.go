package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

// Handler holds the dependencies shared by the HTTP endpoints.
type Handler struct {
	ws             *workspace.Workspace
	renderer       *render.CachedRenderer
	conf           *config.Config
	logger         zerolog.Logger
	suggestEnabled bool
}

// New returns a Handler serving ws and one-off renders through renderer.
func New(ws *workspace.Workspace, renderer *render.CachedRenderer, conf *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		ws:             ws,
		renderer:       renderer,
		conf:           conf,
		logger:         logger.With().Str("component", "http").Logger(),
		suggestEnabled: conf.Suggest.Enabled(),
	}
}

// baseURL prefers the configured public URL and falls back to the request.
func (h *Handler) baseURL(c *gin.Context) string {
	if h.conf.Server.BaseURL != "" {
		return strings.TrimRight(h.conf.Server.BaseURL, "/")
	}
	scheme := "https"
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
	base := h.baseURL(c)
	xml := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <url>\n" +
		"    <loc>" + base + "/" + "</loc>\n" +
		"    <changefreq>weekly</changefreq>\n" +
		"    <priority>1.0</priority>\n" +
		"  </url>\n" +
		"</urlset>\n"
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
