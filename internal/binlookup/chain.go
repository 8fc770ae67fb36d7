package binlookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/allisson/binbot/internal/card/domain"
)

var errNoProviderAnswered = errors.New("no provider answered")

// Chain tries providers in order and retries the whole pass with a constant
// delay. It implements Resolver.
type Chain struct {
	providers []Provider
	attempts  int
	delay     time.Duration
	logger    *slog.Logger
}

// NewChain creates a Chain making at most attempts passes over providers.
func NewChain(providers []Provider, attempts int, delay time.Duration, logger *slog.Logger) *Chain {
	if attempts < 1 {
		attempts = 1
	}
	return &Chain{
		providers: providers,
		attempts:  attempts,
		delay:     delay,
		logger:    logger,
	}
}

// Resolve returns the first provider answer, or Unavailable once every pass
// failed or ctx is done.
func (c *Chain) Resolve(ctx context.Context, bin string) domain.LookupResult {
	if len(c.providers) == 0 {
		return domain.Unavailable()
	}

	var (
		result domain.LookupResult
		pass   int
	)

	operation := func() error {
		pass++
		for _, p := range c.providers {
			metadata, err := p.Lookup(ctx, bin)
			if err == nil {
				result = domain.Resolved(metadata)
				return nil
			}
			c.logger.Warn("bin lookup attempt failed",
				slog.String("provider", p.Name()),
				slog.String("bin", bin),
				slog.Int("pass", pass),
				slog.Any("error", err),
			)
		}
		return errNoProviderAnswered
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.delay), uint64(c.attempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("bin metadata unavailable",
			slog.String("bin", bin),
			slog.Int("passes", pass),
			slog.Any("error", err),
		)
		return domain.Unavailable()
	}

	c.logger.Debug("bin metadata resolved",
		slog.String("bin", bin),
		slog.String("source", result.Metadata.Source),
	)
	return result
}
