package components

import (
	"strconv"

	"github.com/cristianadrielbraun/qrstudio/internal/notify"
)

// ToastProps is the view of one notification.
type ToastProps struct {
	ID       int64
	Message  string
	Severity notify.Severity
	// Class is merged over the variant classes.
	Class string
}

// DOMID is the element id the dismiss button targets.
func (p ToastProps) DOMID() string {
	return "toast-" + strconv.FormatInt(p.ID, 10)
}

// ToastsFrom converts center toasts into view props, oldest first.
func ToastsFrom(toasts []notify.Toast) []ToastProps {
	out := make([]ToastProps, 0, len(toasts))
	for _, t := range toasts {
		out = append(out, ToastProps{ID: t.ID, Message: t.Message, Severity: t.Severity})
	}
	return out
}
