package suggest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

const maxResponseBytes = 1 << 20

// HTTPSuggester posts {"content": ...} to an endpoint that answers with a
// StyleSuggestion JSON object.
type HTTPSuggester struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPSuggester(endpoint, apiKey string, client *http.Client) *HTTPSuggester {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSuggester{endpoint: endpoint, apiKey: apiKey, client: client}
}

type suggestRequest struct {
	Content string `json:"content"`
}

func (h *HTTPSuggester) Suggest(ctx context.Context, content string) (qrconfig.StyleSuggestion, error) {
	body, err := json.Marshal(suggestRequest{Content: content})
	if err != nil {
		return qrconfig.StyleSuggestion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("suggestion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("suggestion endpoint returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("read suggestion: %w", err)
	}

	var s qrconfig.StyleSuggestion
	if err := json.Unmarshal(raw, &s); err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return checked(s)
}
