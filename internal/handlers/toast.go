package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/notify"
	"github.com/cristianadrielbraun/qrstudio/web/components"
)

// GenericToast enqueues a toast from form values and returns the rendered
// stack for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
	message := c.PostForm("description")
	if message == "" {
		message = c.PostForm("title")
	}
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toast message is required"})
		return
	}

	h.ws.Notify(message, notify.ParseSeverity(c.PostForm("variant")))
	h.ToastStack(c)
}

// ToastStack renders the visible toasts as HTML.
func (h *Handler) ToastStack(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	toasts := components.ToastsFrom(h.ws.Toasts())
	if err := components.ToastStack(toasts).Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error().Err(err).Msg("render toasts")
	}
}
