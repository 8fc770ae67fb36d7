// Package service encrypts note content at rest.
package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register the keeper drivers selectable through NOTES_KEY_URI
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Cipher seals and opens note content.
type Cipher interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// keeperCipher delegates to a gocloud.dev secrets keeper.
type keeperCipher struct {
	keeper *secrets.Keeper
}

// OpenCipher opens a keeper for keyURI. Supports base64key://, hashivault://,
// awskms://, gcpkms:// and azurekeyvault://. An empty URI yields a
// passthrough cipher that stores content unencrypted.
func OpenCipher(ctx context.Context, keyURI string) (Cipher, error) {
	if keyURI == "" {
		return NewPlaintextCipher(), nil
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes keeper: %w", err)
	}
	return &keeperCipher{keeper: keeper}, nil
}

func (k *keeperCipher) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	return k.keeper.Encrypt(ctx, plaintext)
}

func (k *keeperCipher) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return k.keeper.Decrypt(ctx, ciphertext)
}

func (k *keeperCipher) Close() error {
	return k.keeper.Close()
}

type plaintextCipher struct{}

// NewPlaintextCipher returns a cipher that copies bytes through unchanged.
func NewPlaintextCipher() Cipher {
	return plaintextCipher{}
}

func (plaintextCipher) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	return append([]byte(nil), plaintext...), nil
}

func (plaintextCipher) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	return append([]byte(nil), ciphertext...), nil
}

func (plaintextCipher) Close() error {
	return nil
}
