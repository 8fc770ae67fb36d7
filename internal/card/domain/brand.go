// Package domain defines the card synthesis vocabulary: brand rules, generation
// requests, batches and BIN metadata.
package domain

// BrandRule describes one card family. Rules are immutable and shared
// process-wide through Brands and OtherBrand.
type BrandRule struct {
	// Name is the stable tag ("visa", "amex", ...).
	Name string
	// DisplayName is the label shown to humans.
	DisplayName string
	// TotalLength is the full card number length including the check digit.
	TotalLength int
	// CVVLength is the number of CVV digits.
	CVVLength int
	// Prefixes are matched with "starts with".
	Prefixes []string
}

// Brand names.
const (
	BrandVisa       = "visa"
	BrandMastercard = "mastercard"
	BrandAmex       = "amex"
	BrandDiscover   = "discover"
	BrandJCB        = "jcb"
	BrandOther      = "other"
)

// Brands is the prefix table in declaration order. The catch-all rule is kept
// apart in OtherBrand.
var Brands = []BrandRule{
	{Name: BrandVisa, DisplayName: "Visa", TotalLength: 16, CVVLength: 3, Prefixes: []string{"4"}},
	{
		Name:        BrandMastercard,
		DisplayName: "Mastercard",
		TotalLength: 16,
		CVVLength:   3,
		Prefixes:    []string{"51", "52", "53", "54", "55"},
	},
	{Name: BrandAmex, DisplayName: "American Express", TotalLength: 15, CVVLength: 4, Prefixes: []string{"34", "37"}},
	{
		Name:        BrandDiscover,
		DisplayName: "Discover",
		TotalLength: 16,
		CVVLength:   3,
		Prefixes:    []string{"6011", "65", "64", "60"},
	},
	{Name: BrandJCB, DisplayName: "JCB", TotalLength: 16, CVVLength: 3, Prefixes: []string{"35"}},
}

// OtherBrand is returned when no prefix matches.
var OtherBrand = BrandRule{Name: BrandOther, DisplayName: Unknown, TotalLength: 16, CVVLength: 3}

// IsOther reports whether r is the catch-all rule.
func (r BrandRule) IsOther() bool {
	return r.Name == BrandOther
}
