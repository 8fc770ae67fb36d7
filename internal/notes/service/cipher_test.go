package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestOpenCipher(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalSecretsRoundTrip", func(t *testing.T) {
		cipher, err := OpenCipher(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, cipher.Close())
		}()

		sealed, err := cipher.Encrypt(ctx, []byte("use 424242 for visa tests"))
		require.NoError(t, err)
		assert.NotContains(t, string(sealed), "424242")

		opened, err := cipher.Decrypt(ctx, sealed)
		require.NoError(t, err)
		assert.Equal(t, "use 424242 for visa tests", string(opened))
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		first, err := OpenCipher(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() { _ = first.Close() }()
		second, err := OpenCipher(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() { _ = second.Close() }()

		sealed, err := first.Encrypt(ctx, []byte("content"))
		require.NoError(t, err)

		_, err = second.Decrypt(ctx, sealed)
		assert.Error(t, err)
	})

	t.Run("Success_EmptyURIIsPlaintext", func(t *testing.T) {
		cipher, err := OpenCipher(ctx, "")
		require.NoError(t, err)

		sealed, err := cipher.Encrypt(ctx, []byte("content"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(sealed))
		assert.NoError(t, cipher.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		cipher, err := OpenCipher(ctx, "invalid://uri")
		assert.Nil(t, cipher)
		assert.ErrorContains(t, err, "failed to open notes keeper")
	})
}
