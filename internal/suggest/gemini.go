package suggest

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiSuggester asks Gemini for a JSON answer constrained by a response
// schema.
type GeminiSuggester struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggester(ctx context.Context, apiKey, model string, opts ...func(*genai.ClientConfig)) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, ErrMissingCredentials
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cc := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiSuggester{client: client, model: model}, nil
}

// WithBaseURL points the client at another API host.
func WithBaseURL(url string) func(*genai.ClientConfig) {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = url }
}

func enumSchema(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

func colorSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: "hex color #rrggbb"}
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"primaryColor":      colorSchema(),
		"secondaryColor":    colorSchema(),
		"cornerSquareColor": colorSchema(),
		"cornerDotColor":    colorSchema(),
		"dotType": enumSchema(
			string(qrconfig.DotSquare), string(qrconfig.DotDots), string(qrconfig.DotRounded),
			string(qrconfig.DotExtraRounded), string(qrconfig.DotClassy), string(qrconfig.DotClassyRounded),
		),
		"cornerSquareType": enumSchema(
			string(qrconfig.CornerSquareSquare), string(qrconfig.CornerSquareDot), string(qrconfig.CornerSquareExtraRounded),
		),
		"cornerDotType": enumSchema(string(qrconfig.CornerDotSquare), string(qrconfig.CornerDotDot)),
	},
	Required: []string{
		"primaryColor", "secondaryColor", "cornerSquareColor", "cornerDotColor",
		"dotType", "cornerSquareType", "cornerDotType",
	},
}

func (g *GeminiSuggester) Suggest(ctx context.Context, content string) (qrconfig.StyleSuggestion, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(content)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema,
	})
	if err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("gemini request: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("%w: empty answer", ErrBadResponse)
	}

	var s qrconfig.StyleSuggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return checked(s)
}
