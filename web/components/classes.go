package components

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/cristianadrielbraun/qrstudio/internal/notify"
)

const toastBase = "pointer-events-auto flex w-full max-w-sm items-start gap-3 rounded-lg border px-4 py-3 text-sm shadow-lg bg-white text-gray-900 border-gray-200"

var toastVariants = map[notify.Severity]string{
	notify.SeveritySuccess: "border-green-200 bg-green-50 text-green-900",
	notify.SeverityError:   "border-red-200 bg-red-50 text-red-900",
	notify.SeverityInfo:    "border-blue-200 bg-blue-50 text-blue-900",
}

// toastClass resolves conflicting utilities so the variant and any caller
// override win over the base.
func toastClass(p ToastProps) string {
	return twmerge.Merge(toastBase, toastVariants[p.Severity], p.Class)
}

func toastIcon(s notify.Severity) string {
	switch s {
	case notify.SeverityError:
		return "!"
	case notify.SeverityInfo:
		return "i"
	default:
		return "✓"
	}
}
