package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/validation"
)

// styleFields are the query parameters QRCodeHandler maps onto a QRConfig.
var styleFields = []string{
	qrconfig.FieldForegroundColor,
	qrconfig.FieldBackgroundColor,
	qrconfig.FieldErrorCorrectionLevel,
	qrconfig.FieldSizePx,
	qrconfig.FieldMarginMode,
	qrconfig.FieldDotStyle,
	qrconfig.FieldCornerSquareStyle,
	qrconfig.FieldCornerDotStyle,
	qrconfig.FieldCornerSquareColor,
	qrconfig.FieldCornerDotColor,
	qrconfig.FieldGradientEnabled,
	qrconfig.FieldGradientColor,
}

// QRCodeHandler renders a one-off QR code from query parameters without
// touching the session. Results are served from the render cache when the
// same schema was drawn before.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	content := c.Query("content")
	ct, err := qrconfig.ParseContentType(c.DefaultQuery("contentType", string(qrconfig.ContentURL)))
	if err != nil {
		abort(c, err)
		return
	}
	if !validation.IsContentValid(content, ct) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content parameter is missing or invalid"})
		return
	}

	format, err := render.ParseFormat(c.DefaultQuery("format", "png"))
	if err != nil {
		abort(c, err)
		return
	}

	cfg := qrconfig.Default()
	cfg.Content = content
	for _, name := range styleFields {
		v, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		if cfg, err = qrconfig.SetField(cfg, name, v); err != nil {
			abort(c, fmt.Errorf("%s: %w", name, err))
			return
		}
	}

	data, hit, err := h.renderer.Render(c.Request.Context(), render.BuildSchema(cfg, nil), format)
	if err != nil {
		h.logger.Error().Err(err).Str("format", string(format)).Msg("one-off render failed")
		abort(c, err)
		return
	}

	cache := "MISS"
	if hit {
		cache = "HIT"
	}
	c.Header("X-Cache", cache)
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, format.MIME(), data)
}
