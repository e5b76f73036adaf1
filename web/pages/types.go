package pages

import "github.com/cristianadrielbraun/qrstudio/web/components"

// HomeProps is what the home page needs from the server. Everything else
// is fetched by the page from the JSON API.
type HomeProps struct {
	Title          string
	BaseURL        string
	SuggestEnabled bool
	Toasts         []components.ToastProps
}
