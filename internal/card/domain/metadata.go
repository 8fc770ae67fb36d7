package domain

// Unknown is the value of every metadata field nobody could supply.
const Unknown = "Unknown"

// Metadata sources.
const (
	SourceBinlist  = "binlist"
	SourceBincheck = "bincheck"
	SourceLocal    = "local"
)

// BinMetadata is issuer information for a BIN. Zero fields are filled with
// Unknown by WithDefaults.
type BinMetadata struct {
	BIN      string `json:"bin"`
	Brand    string `json:"brand"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Bank     string `json:"bank"`
	Country  string `json:"country"`
	Source   string `json:"source"`
}

// WithDefaults returns a copy with every empty descriptive field set to Unknown.
func (m BinMetadata) WithDefaults() BinMetadata {
	for _, f := range []*string{&m.Brand, &m.Type, &m.Category, &m.Bank, &m.Country} {
		if *f == "" {
			*f = Unknown
		}
	}
	return m
}

// LocalMetadata builds metadata from the brand classifier alone.
func LocalMetadata(bin string, rule BrandRule) BinMetadata {
	return BinMetadata{BIN: bin, Brand: rule.DisplayName, Source: SourceLocal}.WithDefaults()
}

// LookupResult is the outcome of a remote metadata lookup: either resolved
// metadata or unavailable. It never carries an error.
type LookupResult struct {
	Metadata  BinMetadata
	Available bool
}

// Resolved wraps successfully fetched metadata.
func Resolved(m BinMetadata) LookupResult {
	return LookupResult{Metadata: m.WithDefaults(), Available: true}
}

// Unavailable is the result when no source answered.
func Unavailable() LookupResult {
	return LookupResult{}
}
