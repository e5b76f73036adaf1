package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

func TestIsContentValid_BlankIsAlwaysInvalid(t *testing.T) {
	for _, ct := range qrconfig.ContentTypes {
		for _, content := range []string{"", " ", "\t\n  "} {
			assert.False(t, IsContentValid(content, ct), "type=%s content=%q", ct, content)
		}
	}
}

func TestIsContentValid_URL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com/path", true},
		{"mailto:someone", false},
		{"example.com", true},
		{"not a url", false},
		{"v1.2", true},
		{"ftp://host", true},
		{"localhost", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsContentValid(tc.in, qrconfig.ContentURL), tc.in)
	}
}

func TestIsContentValid_OtherTypesAcceptAnyText(t *testing.T) {
	for _, ct := range []qrconfig.ContentType{qrconfig.ContentText, qrconfig.ContentEmail, qrconfig.ContentPhone, qrconfig.ContentVCard} {
		assert.True(t, IsContentValid("not a url", ct))
	}
}

func TestScanability_Thresholds(t *testing.T) {
	cases := []struct {
		fg, bg string
		want   Score
	}{
		{"#000000", "#000000", ScorePoor},
		{"#000000", "#31312f", ScorePoor},      // 49+49+47 = 145
		{"#000000", "#323232", ScoreFair},      // 150
		{"#000000", "#636363", ScoreFair},      // 297
		{"#000000", "#646464", ScoreExcellent}, // 300
		{"#000000", "#ffffff", ScoreExcellent},
		{"ffffff", "000000", ScoreExcellent},
		{"#ff0000", "#00ff00", ScoreExcellent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Scanability(tc.fg, tc.bg), "%s vs %s", tc.fg, tc.bg)
	}
}

func TestScanability_MalformedHex(t *testing.T) {
	for _, bad := range []string{"", "#fff", "#gggggg", "red", "#12345678"} {
		assert.Equal(t, ScoreUnknown, Scanability(bad, "#ffffff"), bad)
		assert.Equal(t, ScoreUnknown, Scanability("#000000", bad), bad)
	}
}

func TestDerive(t *testing.T) {
	s := qrconfig.InitialState()
	d := Derive(s)
	assert.True(t, d.Valid)
	assert.Equal(t, ScoreExcellent, d.Scanability)

	s.Config.Content = "  "
	assert.False(t, Derive(s).Valid)
}
