// Package validation derives content validity and a contrast based
// scanability rating from the customization state. Everything here is pure.
package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

// Score is a coarse contrast rating. It is not a guarantee that a code scans.
type Score string

const (
	ScorePoor      Score = "Poor"
	ScoreFair      Score = "Fair"
	ScoreExcellent Score = "Excellent"
	ScoreUnknown   Score = "Unknown"
)

const (
	poorBelow = 150
	fairBelow = 300
)

// IsContentValid reports whether content may be exported for the given type.
// Blank content is never valid. URLs pass when they parse as absolute URLs or
// merely contain a dot, so "example.com" is accepted.
func IsContentValid(content string, t qrconfig.ContentType) bool {
	v := strings.TrimSpace(content)
	if v == "" {
		return false
	}
	if t != qrconfig.ContentURL {
		return true
	}
	if u, err := url.Parse(v); err == nil && u.IsAbs() && u.Host != "" {
		return true
	}
	return strings.Contains(v, ".")
}

// Scanability rates the contrast between fg and bg by the summed absolute
// difference of their RGB channels.
func Scanability(fg, bg string) Score {
	a, ok := parseHex(fg)
	if !ok {
		return ScoreUnknown
	}
	b, ok := parseHex(bg)
	if !ok {
		return ScoreUnknown
	}

	diff := 0
	for i := range a {
		diff += abs(a[i] - b[i])
	}
	switch {
	case diff < poorBelow:
		return ScorePoor
	case diff < fairBelow:
		return ScoreFair
	default:
		return ScoreExcellent
	}
}

// Derived holds the values recomputed on every state change.
type Derived struct {
	Valid       bool  `json:"valid"`
	Scanability Score `json:"scanability"`
}

// Derive computes Derived for s.
func Derive(s qrconfig.State) Derived {
	return Derived{
		Valid:       IsContentValid(s.Config.Content, s.ContentType),
		Scanability: Scanability(s.Config.ForegroundColor, s.Config.BackgroundColor),
	}
}

func parseHex(s string) ([3]int, bool) {
	var out [3]int
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return out, false
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return out, false
		}
		out[i] = int(v)
	}
	return out, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
