// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/binbot/internal/errors"
)

var (
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
	binRegex    = regexp.MustCompile(`^[0-9]{6,8}$`)
	// card part, then up to three optional fields; extra fields are tolerated
	// here and dropped by the parser.
	patternRegex = regexp.MustCompile(`^[0-9xX]+(\|[0-9xX]*)*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Digits validates that a string only contains decimal digits.
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		return digitsRegex.MatchString(s)
	},
	validation.NewError("validation_digits", "must contain only digits"),
)

// BIN validates a bank identification number: 6 to 8 digits.
var BIN = validation.NewStringRuleWithError(
	func(s string) bool {
		return binRegex.MatchString(s)
	},
	validation.NewError("validation_bin", "must be 6 to 8 digits"),
)

// CardPattern validates the character set of a generation pattern
// ("424242xxxx|12|xx|xxx"). Semantic checks belong to the parser.
var CardPattern = validation.NewStringRuleWithError(
	func(s string) bool {
		return patternRegex.MatchString(s)
	},
	validation.NewError("validation_card_pattern", "must contain digits, 'x' placeholders and '|' separators"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// SingleWord validates that a string has no whitespace at all. Note titles are
// addressed as one bot argument, so they cannot contain spaces.
var SingleWord = validation.NewStringRuleWithError(
	func(s string) bool {
		return !strings.ContainsAny(s, " \t\r\n")
	},
	validation.NewError("validation_single_word", "must not contain whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
