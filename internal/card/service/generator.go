package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/allisson/binbot/internal/card/domain"
	"github.com/allisson/binbot/internal/errors"
)

// Expiry window, in days from now.
const (
	minExpiryDays = 365
	maxExpiryDays = 1825
)

// Generator synthesizes Luhn-valid card numbers, expiry dates and CVVs.
// It holds no mutable state of its own; concurrency safety follows the Source.
type Generator struct {
	classifier *Classifier
	rng        Source
	now        func() time.Time
}

// NewGenerator creates a Generator. A nil now uses time.Now.
func NewGenerator(classifier *Classifier, rng Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{classifier: classifier, rng: rng, now: now}
}

// Classify exposes the brand lookup used during synthesis.
func (g *Generator) Classify(prefix string) domain.BrandRule {
	return g.classifier.Classify(prefix)
}

// Synthesize returns a Luhn-valid number of the brand's length. Digits of
// cardPart are kept, anything else is drawn at random, the last position is
// always the computed check digit and characters past the brand length are
// dropped.
func (g *Generator) Synthesize(cardPart string) string {
	return g.synthesize(g.classifier.Classify(leading(cardPart, 6)), cardPart)
}

func (g *Generator) synthesize(rule domain.BrandRule, cardPart string) string {
	body := make([]byte, rule.TotalLength-1)
	for i := range body {
		if i < len(cardPart) && isDigit(cardPart[i]) {
			body[i] = cardPart[i]
			continue
		}
		body[i] = g.digit()
	}
	return completeLuhn(body)
}

// FutureDate returns a two-digit month and year between one and five years
// from now.
func (g *Generator) FutureDate() (month, year string) {
	days := minExpiryDays + g.rng.IntN(maxExpiryDays-minExpiryDays+1)
	t := g.now().AddDate(0, 0, days)
	return fmt.Sprintf("%02d", int(t.Month())), fmt.Sprintf("%02d", t.Year()%100)
}

// CVV returns rule.CVVLength random digits.
func (g *Generator) CVV(rule domain.BrandRule) string {
	cvv := make([]byte, rule.CVVLength)
	for i := range cvv {
		cvv[i] = g.digit()
	}
	return string(cvv)
}

// GenerateBatch produces count lines from a raw pattern. Unparseable patterns
// and explicit fields that cannot belong to the brand yield an empty batch
// with no error; a negative count or unknown mode is a caller error.
func (g *Generator) GenerateBatch(raw string, count int, mode domain.Mode) ([]string, error) {
	if count < 0 {
		return nil, errors.Wrapf(domain.ErrInvalidCount, "count %d", count)
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	if mode == domain.ModeDateOnly {
		return g.dateOnlyBatch(raw, count), nil
	}

	req, ok := ParsePattern(raw)
	if !ok || count == 0 {
		return []string{}, nil
	}

	rule := g.classifier.Classify(req.BIN())
	lines := make([]string, 0, count)
	if !g.compatible(req, rule) {
		return []string{}, nil
	}
	for range count {
		month, year := req.Month, req.Year
		if month == "" || year == "" {
			m, y := g.FutureDate()
			if month == "" {
				month = m
			}
			if year == "" {
				year = y
			}
		}
		cvv := req.CVV
		if cvv == "" {
			cvv = g.CVV(rule)
		}
		number := g.synthesize(rule, req.CardPart)
		lines = append(lines, strings.Join([]string{number, month, year, cvv}, domain.FieldSeparator))
	}
	return lines, nil
}

// dateOnlyBatch emits mm|yy|cvv lines. Only the card part is read, for
// classification; explicit month, year and cvv fields are ignored.
func (g *Generator) dateOnlyBatch(raw string, count int) []string {
	cardPart, ok := parseCardPart(splitPattern(raw)[0])
	if !ok || count == 0 {
		return []string{}
	}

	rule := g.classifier.Classify(cardPart[:6])
	lines := make([]string, 0, count)
	for range count {
		month, year := g.FutureDate()
		lines = append(lines, strings.Join([]string{month, year, g.CVV(rule)}, domain.FieldSeparator))
	}
	return lines
}

// compatible rejects explicit years already in the past and CVVs of the
// wrong length for the brand.
func (g *Generator) compatible(req *domain.GenerationRequest, rule domain.BrandRule) bool {
	if req.Year != "" {
		yy, _ := strconv.Atoi(req.Year)
		if 2000+yy < g.now().Year() {
			return false
		}
	}
	if req.CVV != "" && len(req.CVV) != rule.CVVLength {
		return false
	}
	return true
}

func (g *Generator) digit() byte {
	return byte('0' + g.rng.IntN(10))
}

func leading(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
