// Package suggest asks an external model for a QR style matching some
// content. Backends return a validated qrconfig.StyleSuggestion or an
// error; there is no retry.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

var (
	ErrDisabled           = errors.New("style suggestions are disabled")
	ErrMissingCredentials = errors.New("missing suggestion credentials")
	ErrBadResponse        = errors.New("malformed suggestion response")
)

type Suggester interface {
	Suggest(ctx context.Context, content string) (qrconfig.StyleSuggestion, error)
}

// New builds the backend named in the configuration.
func New(ctx context.Context, conf *config.Config, logger zerolog.Logger) (Suggester, error) {
	switch conf.Suggest.Provider {
	case "gemini":
		if conf.Suggest.APIKey == "" {
			logger.Warn().Msg("gemini selected without an API key, suggestions will fail")
			return Unavailable{Err: ErrMissingCredentials}, nil
		}
		return NewGeminiSuggester(ctx, conf.Suggest.APIKey, conf.Suggest.Model)
	case "http":
		return NewHTTPSuggester(conf.Suggest.Endpoint, conf.Suggest.APIKey, http.DefaultClient), nil
	case "none", "":
		logger.Info().Msg("style suggestions disabled")
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown suggestion provider %q", conf.Suggest.Provider)
	}
}

// Disabled always fails with ErrDisabled.
type Disabled struct{}

func (Disabled) Suggest(context.Context, string) (qrconfig.StyleSuggestion, error) {
	return qrconfig.StyleSuggestion{}, ErrDisabled
}

// Unavailable is a configured backend that cannot serve requests. Every
// call fails with Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) Suggest(context.Context, string) (qrconfig.StyleSuggestion, error) {
	return qrconfig.StyleSuggestion{}, u.Err
}

// checked rejects suggestions naming shapes the renderer does not know.
func checked(s qrconfig.StyleSuggestion) (qrconfig.StyleSuggestion, error) {
	if err := s.Validate(); err != nil {
		return qrconfig.StyleSuggestion{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return s, nil
}

func prompt(content string) string {
	return fmt.Sprintf(`Suggest a visually appealing, scannable QR code style for this content: %q.
Return hex colors (#rrggbb) with strong contrast against a white background.
primaryColor is the dot color, secondaryColor the gradient end color.
dotType is one of square, dots, rounded, extra-rounded, classy, classy-rounded.
cornerSquareType is one of square, dot, extra-rounded.
cornerDotType is one of square, dot.`, content)
}
