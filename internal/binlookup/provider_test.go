package binlookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/binbot/internal/card/domain"
)

func newJSONServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBinlistProvider_Lookup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := newJSONServer(t, http.StatusOK, `{
			"number": {"length": 16, "luhn": true},
			"scheme": "visa",
			"type": "debit",
			"brand": "visa/dankort",
			"bank": {"name": "Jyske Bank", "url": "www.jyskebank.dk"},
			"country": {"name": "Denmark", "alpha2": "DK"}
		}`)
		provider := NewBinlistProvider(server.URL+"/", time.Second)

		metadata, err := provider.Lookup(context.Background(), "45717360")

		require.NoError(t, err)
		assert.Equal(t, domain.BinMetadata{
			BIN:      "45717360",
			Brand:    "Visa",
			Type:     "Debit",
			Category: "Visa/Dankort",
			Bank:     "Jyske Bank",
			Country:  "Denmark",
			Source:   domain.SourceBinlist,
		}, metadata)
		assert.Equal(t, "binlist", provider.Name())
	})

	t.Run("Success_MissingFieldsUnknown", func(t *testing.T) {
		server := newJSONServer(t, http.StatusOK, `{"scheme": "mastercard"}`)
		provider := NewBinlistProvider(server.URL, time.Second)

		metadata, err := provider.Lookup(context.Background(), "510510")

		require.NoError(t, err)
		assert.Equal(t, "Mastercard", metadata.Brand)
		assert.Equal(t, domain.Unknown, metadata.Type)
		assert.Equal(t, domain.Unknown, metadata.Bank)
		assert.Equal(t, domain.Unknown, metadata.Country)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		server := newJSONServer(t, http.StatusNotFound, ``)
		provider := NewBinlistProvider(server.URL, time.Second)

		_, err := provider.Lookup(context.Background(), "999999")

		assert.ErrorContains(t, err, "unexpected status 404")
	})

	t.Run("Error_MalformedBody", func(t *testing.T) {
		server := newJSONServer(t, http.StatusOK, `{"scheme":`)
		provider := NewBinlistProvider(server.URL, time.Second)

		_, err := provider.Lookup(context.Background(), "424242")

		assert.ErrorContains(t, err, "failed to decode response")
	})

	t.Run("Error_Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()
		provider := NewBinlistProvider(server.URL, 20*time.Millisecond)

		_, err := provider.Lookup(context.Background(), "424242")

		assert.ErrorContains(t, err, "request failed")
	})
}

func TestBincheckProvider_Lookup(t *testing.T) {
	t.Run("Success_PlainStrings", func(t *testing.T) {
		server := newJSONServer(t, http.StatusOK, `{
			"brand": "AMERICAN EXPRESS",
			"card_type": "credit",
			"level": "platinum",
			"issuing_bank": "American Express US",
			"country": "United States"
		}`)
		provider := NewBincheckProvider(server.URL, time.Second)

		metadata, err := provider.Lookup(context.Background(), "371449")

		require.NoError(t, err)
		assert.Equal(t, domain.BinMetadata{
			BIN:      "371449",
			Brand:    "American Express",
			Type:     "Credit",
			Category: "Platinum",
			Bank:     "American Express US",
			Country:  "United States",
			Source:   domain.SourceBincheck,
		}, metadata)
	})

	t.Run("Success_NestedNames", func(t *testing.T) {
		server := newJSONServer(t, http.StatusOK, `{
			"brand": "visa",
			"issuing_bank": {"name": "Chase"},
			"country": {"name": "United States"}
		}`)
		provider := NewBincheckProvider(server.URL, time.Second)

		metadata, err := provider.Lookup(context.Background(), "424242")

		require.NoError(t, err)
		assert.Equal(t, "Chase", metadata.Bank)
		assert.Equal(t, "United States", metadata.Country)
		assert.Equal(t, domain.Unknown, metadata.Category)
	})
}
