package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

type fieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value any    `json:"value"`
}

type contentTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
	workspace.Snapshot
}

// respond writes the snapshot, or the error with the snapshot attached so
// the page can still resync.
func respond(c *gin.Context, snap workspace.Snapshot, err error) {
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error(), Snapshot: snap})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Snapshot())
}

func (h *Handler) SetField(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.ws.SetField(c.Request.Context(), req.Name, req.Value)
	respond(c, snap, err)
}

func (h *Handler) SetContentType(c *gin.Context) {
	var req contentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.ws.SetContentType(c.Request.Context(), qrconfig.ContentType(req.Type))
	respond(c, snap, err)
}

// UploadLogo accepts a multipart "file" field.
func (h *Handler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}
	if fh.Size > render.MaxLogoBytes {
		abort(c, fmt.Errorf("%w: file exceeds %d bytes", render.ErrInvalidLogo, render.MaxLogoBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		abort(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, render.MaxLogoBytes+1))
	if err != nil {
		abort(c, err)
		return
	}

	snap, err := h.ws.SetLogo(c.Request.Context(), fh.Filename, data)
	respond(c, snap, err)
}

func (h *Handler) ClearLogo(c *gin.Context) {
	snap, err := h.ws.ClearLogo(c.Request.Context())
	respond(c, snap, err)
}

func (h *Handler) Reset(c *gin.Context) {
	snap, err := h.ws.Reset(c.Request.Context())
	respond(c, snap, err)
}

func (h *Handler) Suggest(c *gin.Context) {
	snap, err := h.ws.Suggest(c.Request.Context())
	respond(c, snap, err)
}

// Export streams the current symbol as an attachment.
func (h *Handler) Export(c *gin.Context) {
	format, err := render.ParseFormat(c.Param("format"))
	if err != nil {
		abort(c, err)
		return
	}

	file, err := h.ws.Download(c.Request.Context(), format)
	if err != nil {
		abort(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.MIME, file.Data)
}

// Copy returns the PNG as a data URI; the page puts it on the clipboard.
func (h *Handler) Copy(c *gin.Context) {
	clip := &export.DataURIClipboard{}
	if err := h.ws.Copy(c.Request.Context(), clip); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataURI": clip.DataURI()})
}

func (h *Handler) Preview(c *gin.Context) {
	png, version, ok := h.ws.Preview()
	if !ok {
		abort(c, render.ErrNothingRendered)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("ETag", strconv.Quote(strconv.FormatUint(version, 10)))
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) Toasts(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Toasts())
}

func (h *Handler) DismissToast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toast id"})
		return
	}
	if !h.ws.DismissToast(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "toast not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.History())
}
