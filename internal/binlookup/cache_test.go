package binlookup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/binbot/internal/card/domain"
)

type stubResolver struct {
	calls  int
	result domain.LookupResult
}

func (s *stubResolver) Resolve(context.Context, string) domain.LookupResult {
	s.calls++
	return s.result
}

func TestCachedResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	ttl := 24 * time.Hour
	metadata := domain.BinMetadata{
		BIN: "424242", Brand: "Visa", Type: "Credit", Category: "Classic",
		Bank: "Stripe", Country: "United States", Source: domain.SourceBinlist,
	}
	encoded, err := json.Marshal(metadata)
	require.NoError(t, err)

	t.Run("Success_Hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		next := &stubResolver{}
		resolver := NewCachedResolver(next, client, ttl, newDiscardLogger())

		mock.ExpectGet("binbot:bin:424242").SetVal(string(encoded))

		result := resolver.Resolve(ctx, "424242")

		assert.True(t, result.Available)
		assert.Equal(t, metadata, result.Metadata)
		assert.Equal(t, 0, next.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_MissStoresResult", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		next := &stubResolver{result: domain.Resolved(metadata)}
		resolver := NewCachedResolver(next, client, ttl, newDiscardLogger())

		mock.ExpectGet("binbot:bin:424242").RedisNil()
		mock.ExpectSet("binbot:bin:424242", string(encoded), ttl).SetVal("OK")

		result := resolver.Resolve(ctx, "424242")

		assert.True(t, result.Available)
		assert.Equal(t, 1, next.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_UnavailableNotCached", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		next := &stubResolver{result: domain.Unavailable()}
		resolver := NewCachedResolver(next, client, ttl, newDiscardLogger())

		mock.ExpectGet("binbot:bin:999999").RedisNil()

		result := resolver.Resolve(ctx, "999999")

		assert.False(t, result.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_RedisDownFallsThrough", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		next := &stubResolver{result: domain.Resolved(metadata)}
		resolver := NewCachedResolver(next, client, ttl, newDiscardLogger())

		mock.ExpectGet("binbot:bin:424242").SetErr(errors.New("connection refused"))
		mock.ExpectSet("binbot:bin:424242", string(encoded), ttl).SetErr(errors.New("connection refused"))

		result := resolver.Resolve(ctx, "424242")

		assert.True(t, result.Available)
		assert.Equal(t, "Stripe", result.Metadata.Bank)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_CorruptEntryRefetched", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		next := &stubResolver{result: domain.Resolved(metadata)}
		resolver := NewCachedResolver(next, client, ttl, newDiscardLogger())

		mock.ExpectGet("binbot:bin:424242").SetVal("{not json")
		mock.ExpectSet("binbot:bin:424242", string(encoded), ttl).SetVal("OK")

		result := resolver.Resolve(ctx, "424242")

		assert.True(t, result.Available)
		assert.Equal(t, 1, next.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
