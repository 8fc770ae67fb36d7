package service

import (
	"strconv"
	"strings"

	"github.com/allisson/binbot/internal/card/domain"
)

// maxPatternFields is the number of pattern fields read; anything after the
// CVV field is ignored.
const maxPatternFields = 4

// ParsePattern normalizes "cc[|mm[|yy[|cvv]]]". It reports false when the
// card part does not start with six digits or an explicit field is malformed.
func ParsePattern(raw string) (*domain.GenerationRequest, bool) {
	fields := splitPattern(raw)

	cardPart, ok := parseCardPart(fields[0])
	if !ok {
		return nil, false
	}

	req := &domain.GenerationRequest{CardPart: cardPart}
	if req.Month, ok = explicitField(fields[1], validMonth); !ok {
		return nil, false
	}
	if req.Year, ok = explicitField(fields[2], validYear); !ok {
		return nil, false
	}
	if req.CVV, ok = explicitField(fields[3], validCVV); !ok {
		return nil, false
	}
	return req, true
}

// splitPattern returns exactly maxPatternFields fields, padding missing ones
// with "".
func splitPattern(raw string) []string {
	fields := strings.Split(strings.TrimSpace(raw), domain.FieldSeparator)
	if len(fields) > maxPatternFields {
		fields = fields[:maxPatternFields]
	}
	for len(fields) < maxPatternFields {
		fields = append(fields, "")
	}
	return fields
}

// parseCardPart accepts six leading digits followed by digits or placeholders.
func parseCardPart(field string) (string, bool) {
	cardPart := strings.TrimSpace(field)
	if len(cardPart) < 6 || !isDigits(cardPart[:6]) {
		return "", false
	}
	for i := 6; i < len(cardPart); i++ {
		if !isDigit(cardPart[i]) && !domain.IsPlaceholder(cardPart[i]) {
			return "", false
		}
	}
	return cardPart, true
}

// explicitField returns "" for a placeholder field and the trimmed value when
// it passes check.
func explicitField(field string, check func(string) bool) (string, bool) {
	field = strings.TrimSpace(field)
	if domain.IsPlaceholderField(field) {
		return "", true
	}
	if !check(field) {
		return "", false
	}
	return field, true
}

func validMonth(s string) bool {
	if len(s) != 2 || !isDigits(s) {
		return false
	}
	m, _ := strconv.Atoi(s)
	return m >= 1 && m <= 12
}

func validYear(s string) bool {
	return len(s) == 2 && isDigits(s)
}

func validCVV(s string) bool {
	return len(s) >= 3 && len(s) <= 4 && isDigits(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
