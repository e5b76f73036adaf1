package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/metrics"
)

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h *Handler, m metrics.Provider) *gin.Engine {
	gin.SetMode(h.conf.Server.Mode)
	r := gin.New()
	r.Use(logger.Middleware(h.logger))
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware(m))

	// Static assets
	r.Static("/web/static", "web/static")
	r.Static("/web/assets", "web/assets")

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)

		api.GET("/state", h.State)
		api.POST("/state/field", h.SetField)
		api.POST("/state/content-type", h.SetContentType)
		api.POST("/logo", h.UploadLogo)
		api.DELETE("/logo", h.ClearLogo)
		api.POST("/reset", h.Reset)
		api.POST("/suggest", h.Suggest)

		api.GET("/export/:format", h.Export)
		api.POST("/copy", h.Copy)
		api.GET("/preview.png", h.Preview)
		api.GET("/history", h.History)

		api.GET("/toasts", h.Toasts)
		api.DELETE("/toasts/:id", h.DismissToast)
		api.POST("/htmx/toast", h.GenericToast)
		api.GET("/htmx/toasts", h.ToastStack)
	}

	if handler := m.Handler(); handler != nil {
		r.GET(h.conf.Metrics.Path, gin.WrapH(handler))
	}

	// Pages
	r.GET("/", h.Home)
	r.GET("/sitemap.xml", h.SitemapXML)

	return r
}
