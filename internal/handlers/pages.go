package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/web/components"
	"github.com/cristianadrielbraun/qrstudio/web/pages"
)

const pageTitle = "QR Studio"

func (h *Handler) Home(c *gin.Context) {
	props := pages.HomeProps{
		Title:          pageTitle,
		BaseURL:        h.baseURL(c),
		SuggestEnabled: h.suggestEnabled,
		Toasts:         components.ToastsFrom(h.ws.Toasts()),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.HomePage(props).Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error().Err(err).Msg("render home page")
	}
}
