package binlookup

import (
	"context"
	"time"

	"github.com/allisson/binbot/internal/card/domain"
)

type binlistResponse struct {
	Scheme  string    `json:"scheme"`
	Type    string    `json:"type"`
	Brand   string    `json:"brand"`
	Bank    nameField `json:"bank"`
	Country nameField `json:"country"`
}

// BinlistProvider queries the binlist.net lookup API.
type BinlistProvider struct {
	httpSource
}

// NewBinlistProvider creates a provider for baseURL (https://lookup.binlist.net).
func NewBinlistProvider(baseURL string, timeout time.Duration) *BinlistProvider {
	return &BinlistProvider{httpSource: newHTTPSource(domain.SourceBinlist, baseURL, timeout)}
}

// Lookup maps scheme to brand and the binlist brand to category.
func (p *BinlistProvider) Lookup(ctx context.Context, bin string) (domain.BinMetadata, error) {
	var body binlistResponse
	if err := p.getJSON(ctx, bin, &body); err != nil {
		return domain.BinMetadata{}, err
	}

	return domain.BinMetadata{
		BIN:      bin,
		Brand:    title(body.Scheme),
		Type:     title(body.Type),
		Category: title(body.Brand),
		Bank:     string(body.Bank),
		Country:  string(body.Country),
		Source:   domain.SourceBinlist,
	}.WithDefaults(), nil
}
