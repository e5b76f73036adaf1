package qrconfig

// StyleSuggestion is an externally generated set of style values. Applying it
// overwrites exactly its seven fields and nothing else.
type StyleSuggestion struct {
	PrimaryColor      string            `json:"primaryColor"`
	SecondaryColor    string            `json:"secondaryColor"`
	CornerSquareColor string            `json:"cornerSquareColor"`
	CornerDotColor    string            `json:"cornerDotColor"`
	DotType           DotStyle          `json:"dotType"`
	CornerSquareType  CornerSquareStyle `json:"cornerSquareType"`
	CornerDotType     CornerDotStyle    `json:"cornerDotType"`
}

// ApplySuggestion returns cfg with the suggestion's style fields written over
// it. Content, size, margin, error correction and the gradient toggle are kept.
func ApplySuggestion(cfg QRConfig, s StyleSuggestion) QRConfig {
	next := cfg
	next.ForegroundColor = s.PrimaryColor
	next.GradientColor = s.SecondaryColor
	next.CornerSquareColor = s.CornerSquareColor
	next.CornerDotColor = s.CornerDotColor
	next.DotStyle = s.DotType
	next.CornerSquareStyle = s.CornerSquareType
	next.CornerDotStyle = s.CornerDotType
	return next
}

// Validate reports whether the suggested shapes are ones the renderer knows.
func (s StyleSuggestion) Validate() error {
	return Check(ApplySuggestion(Default(), s))
}
