// Package binlookup resolves issuer metadata for a BIN from remote services,
// with retries and an optional Redis read-through cache.
package binlookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/allisson/binbot/internal/card/domain"
)

// DefaultUserAgent is sent on every lookup request.
const DefaultUserAgent = "binbot/1.0 (+https://github.com/allisson/binbot)"

const maxResponseBytes = 1 << 20

// Provider is one remote metadata source.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, bin string) (domain.BinMetadata, error)
}

// Resolver is the never-failing lookup contract consumed by the card use case.
type Resolver interface {
	Resolve(ctx context.Context, bin string) domain.LookupResult
}

// httpSource holds what the JSON providers share.
type httpSource struct {
	name      string
	baseURL   string
	userAgent string
	client    *http.Client
}

func newHTTPSource(name, baseURL string, timeout time.Duration) httpSource {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return httpSource{
		name:      name,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		client:    client,
	}
}

func (s httpSource) Name() string {
	return s.name
}

// getJSON fetches <baseURL>/<bin> and decodes the body into v.
func (s httpSource) getJSON(ctx context.Context, bin string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+url.PathEscape(bin), nil)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", s.name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", s.name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", s.name, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(v); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", s.name, err)
	}
	return nil
}

// nameField accepts either "Some Bank" or {"name": "Some Bank"}.
type nameField string

func (n *nameField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = nameField(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*n = nameField(obj.Name)
	return nil
}

func title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
