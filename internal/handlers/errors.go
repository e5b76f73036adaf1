package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/suggest"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, qrconfig.ErrUnknownField),
		errors.Is(err, qrconfig.ErrInvalidValue),
		errors.Is(err, qrconfig.ErrUnknownContentType),
		errors.Is(err, render.ErrUnsupportedFormat),
		errors.Is(err, render.ErrInvalidLogo):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrInvalidContent),
		errors.Is(err, render.ErrEncodeFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, workspace.ErrSuggestionInFlight):
		return http.StatusConflict
	case errors.Is(err, suggest.ErrDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, render.ErrNothingRendered),
		errors.Is(err, export.ErrNothingToCopy):
		return http.StatusServiceUnavailable
	case errors.Is(err, suggest.ErrBadResponse),
		errors.Is(err, suggest.ErrMissingCredentials):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abort writes {"error": ...} and attaches err to the request log.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
