package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/cache"
	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/history"
	"github.com/cristianadrielbraun/qrstudio/internal/metrics"
	"github.com/cristianadrielbraun/qrstudio/internal/notify"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/suggest"
	"github.com/cristianadrielbraun/qrstudio/internal/workspace"
)

type stubSuggester struct {
	err error
}

func (s stubSuggester) Suggest(context.Context, string) (qrconfig.StyleSuggestion, error) {
	if s.err != nil {
		return qrconfig.StyleSuggestion{}, s.err
	}
	return qrconfig.StyleSuggestion{
		PrimaryColor:      "#0f172a",
		SecondaryColor:    "#6366f1",
		CornerSquareColor: "#0f172a",
		CornerDotColor:    "#6366f1",
		DotType:           qrconfig.DotDots,
		CornerSquareType:  qrconfig.CornerSquareExtraRounded,
		CornerDotType:     qrconfig.CornerDotDot,
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppName: config.AppName,
		Server:  config.Server{Host: "127.0.0.1", Port: 8080, Mode: gin.TestMode},
		Suggest: config.Suggest{Provider: "http"},
		Cache:   config.Cache{Enabled: true, Size: 128, TTL: time.Minute},
		Metrics: config.Metrics{Enabled: true, Path: "/metrics"},
	}
}

func newRouter(t *testing.T, s suggest.Suggester) *gin.Engine {
	t.Helper()
	return newRouterWith(t, testConfig(), s)
}

func newRouterWith(t *testing.T, conf *config.Config, s suggest.Suggester) *gin.Engine {
	t.Helper()
	log := zerolog.Nop()
	m := metrics.NewProvider(conf)

	engine := render.NewQREngine(log)
	toasts := notify.NewCenter(notify.WithTTL(time.Hour))
	hist := history.NewLog(history.NewMemoryStore(), log)

	ws, err := workspace.New(context.Background(), workspace.Deps{
		Adapter:   render.NewAdapter(engine),
		Surface:   render.NewPreviewSurface(),
		Exporter:  export.NewController(engine, toasts, hist, log, export.WithMetrics(m)),
		Toasts:    toasts,
		History:   hist,
		Suggester: s,
		Metrics:   m,
		Logger:    log,
	})
	require.NoError(t, err)
	t.Cleanup(ws.Close)

	renderer := render.NewCachedRenderer(cache.NewProvider(conf, log), m)
	return NewRouter(New(ws, renderer, conf, log), m)
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func snapshot(t *testing.T, w *httptest.ResponseRecorder) workspace.Snapshot {
	t.Helper()
	var snap workspace.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func TestState(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := snapshot(t, w)
	assert.Equal(t, qrconfig.Default(), snap.State.Config)
	assert.True(t, snap.Valid)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetField(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodPost, "/api/state/field", gin.H{"name": "sizePx", "value": 640})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 640, snapshot(t, w).State.Config.SizePx)

	w = do(r, http.MethodPost, "/api/state/field", gin.H{"name": "bogus", "value": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown configuration field")

	w = do(r, http.MethodPost, "/api/state/field", gin.H{"name": "sizePx", "value": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/state/field", gin.H{"value": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetContentType(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodPost, "/api/state/content-type", gin.H{"type": "email"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, qrconfig.ContentEmail, snapshot(t, w).State.ContentType)

	w = do(r, http.MethodPost, "/api/state/content-type", gin.H{"type": "fax"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func logoForm(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(8, 8, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLogo_UploadAndClear(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	body, ct := logoForm(t, "brand.png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/logo", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	snap := snapshot(t, w)
	require.NotNil(t, snap.State.Logo)
	assert.Equal(t, "brand.png", snap.State.Logo.Name)
	assert.Equal(t, "image/png", snap.State.Logo.MIME)

	w = do(r, http.MethodDelete, "/api/logo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, snapshot(t, w).State.Logo)
}

func TestLogo_Rejected(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodPost, "/api/logo", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct := logoForm(t, "brand.png", []byte("nope"))
	req := httptest.NewRequest(http.MethodPost, "/api/logo", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReset(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	do(r, http.MethodPost, "/api/state/field", gin.H{"name": "dotStyle", "value": "classy"})
	w := do(r, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, qrconfig.InitialState(), snapshot(t, w).State)
}

func TestSuggest(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodPost, "/api/suggest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := snapshot(t, w)
	assert.Equal(t, qrconfig.DotDots, snap.State.Config.DotStyle)
	require.Len(t, snap.Toasts, 1)
	assert.Equal(t, notify.SeveritySuccess, snap.Toasts[0].Severity)
}

func TestSuggest_Failure(t *testing.T) {
	r := newRouter(t, stubSuggester{err: suggest.ErrBadResponse})

	w := do(r, http.MethodPost, "/api/suggest", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestExport(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	for _, tc := range []struct {
		format, mime string
	}{
		{"png", "image/png"},
		{"svg", "image/svg+xml"},
		{"webp", "image/webp"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			w := do(r, http.MethodGet, "/api/export/"+tc.format, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.mime, w.Header().Get("Content-Type"))
			assert.Regexp(t, `attachment; filename="qrcode-\d+\.`+tc.format+`"`, w.Header().Get("Content-Disposition"))
			assert.NotEmpty(t, w.Body.Bytes())
		})
	}

	w := do(r, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
}

func TestExport_Refusals(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodGet, "/api/export/gif", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(r, http.MethodPost, "/api/state/field", gin.H{"name": "content", "value": "   "})
	w = do(r, http.MethodGet, "/api/export/png", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCopy(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodPost, "/api/copy", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DataURI string `json:"dataURI"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.DataURI, "data:image/png;base64,"))
}

func TestPreview(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodGet, "/api/preview.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, qrconfig.DefaultSizePx, img.Bounds().Dx())
}

func TestToasts(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	do(r, http.MethodPost, "/api/suggest", nil)

	w := do(r, http.MethodGet, "/api/toasts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toasts []notify.Toast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toasts))
	require.Len(t, toasts, 1)

	id := strconv.FormatInt(toasts[0].ID, 10)
	w = do(r, http.MethodDelete, "/api/toasts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/api/toasts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/api/toasts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenericToast(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	req := httptest.NewRequest(http.MethodPost, "/api/htmx/toast",
		strings.NewReader("description=Saved&variant=destructive"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Saved")
	assert.Contains(t, w.Body.String(), "bg-red-50")
}

func TestHome_SuggestButtonFollowsProvider(t *testing.T) {
	for _, provider := range []string{"", "none"} {
		conf := testConfig()
		conf.Suggest.Provider = provider
		r := newRouterWith(t, conf, suggest.Disabled{})

		w := do(r, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `data-action="suggest"`, "provider %q", provider)
	}

	w := do(newRouter(t, stubSuggester{}), http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), `data-action="suggest"`)
}

func TestQRCodeHandler(t *testing.T) {
	r := newRouter(t, stubSuggester{})
	path := "/api/qr?content=https://example.com&format=png&sizePx=200&dotStyle=dots&marginMode=false"

	w := do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	w = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}

func TestQRCodeHandler_LargeRenderIsCached(t *testing.T) {
	r := newRouter(t, stubSuggester{})
	path := "/api/qr?content=https://example.com/some/longer/path&format=png&sizePx=1000&dotStyle=classy-rounded"

	w := do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}

func TestQRCodeHandler_BadInput(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/qr", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/qr?content=a.b&format=bmp", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/qr?content=a.b&dotStyle=star", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/qr?content=a.b&contentType=fax", nil).Code)
}

func TestHomeAndSitemap(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	w := do(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>QR Studio</title>")
	assert.Contains(t, w.Body.String(), `data-action="suggest"`)

	w = do(r, http.MethodGet, "/sitemap.xml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>http://example.com/</loc>")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t, stubSuggester{})

	do(r, http.MethodGet, "/api/state", nil)
	w := do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "qrstudio_requests_total")
}
