package domain

import "strings"

// Placeholder is the pattern character meaning "any digit".
const Placeholder = 'x'

// Field separator of extrapolation patterns ("cc|mm|yy|cvv").
const FieldSeparator = "|"

// GenerationRequest is the normalized form of a pattern string. Empty Month,
// Year or CVV mean "placeholder": the value is drawn during synthesis.
type GenerationRequest struct {
	// CardPart holds digits and placeholders, unpadded.
	CardPart string
	Month    string
	Year     string
	CVV      string
}

// BIN returns the first six characters of the card part.
func (r *GenerationRequest) BIN() string {
	if len(r.CardPart) < 6 {
		return r.CardPart
	}
	return r.CardPart[:6]
}

// GenerateDatePair reports whether month and year are both placeholders, in
// which case they are drawn together as one coherent future date.
func (r *GenerationRequest) GenerateDatePair() bool {
	return r.Month == "" && r.Year == ""
}

// IsPlaceholderField reports whether a pattern field stands for "generate
// this": empty, or made only of 'x'/'X'.
func IsPlaceholderField(field string) bool {
	return strings.Trim(strings.ToLower(field), string(Placeholder)) == ""
}

// IsPlaceholder reports whether c is the placeholder marker, in either case.
func IsPlaceholder(c byte) bool {
	return c == Placeholder || c == 'X'
}
