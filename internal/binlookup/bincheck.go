package binlookup

import (
	"context"
	"time"

	"github.com/allisson/binbot/internal/card/domain"
)

type bincheckResponse struct {
	Brand       string    `json:"brand"`
	CardType    string    `json:"card_type"`
	Level       string    `json:"level"`
	IssuingBank nameField `json:"issuing_bank"`
	Country     nameField `json:"country"`
}

// BincheckProvider queries the bincheck.io API. It is the backup source.
type BincheckProvider struct {
	httpSource
}

// NewBincheckProvider creates a provider for baseURL (https://bincheck.io/bin).
func NewBincheckProvider(baseURL string, timeout time.Duration) *BincheckProvider {
	return &BincheckProvider{httpSource: newHTTPSource(domain.SourceBincheck, baseURL, timeout)}
}

// Lookup maps card_type to type and level to category.
func (p *BincheckProvider) Lookup(ctx context.Context, bin string) (domain.BinMetadata, error) {
	var body bincheckResponse
	if err := p.getJSON(ctx, bin, &body); err != nil {
		return domain.BinMetadata{}, err
	}

	return domain.BinMetadata{
		BIN:      bin,
		Brand:    title(body.Brand),
		Type:     title(body.CardType),
		Category: title(body.Level),
		Bank:     string(body.IssuingBank),
		Country:  string(body.Country),
		Source:   domain.SourceBincheck,
	}.WithDefaults(), nil
}
