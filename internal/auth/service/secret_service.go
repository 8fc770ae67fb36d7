package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/binbot/internal/errors"
)

// KeyPrefix marks generated admin keys so they are recognizable in configs and
// logs.
const KeyPrefix = "bbk_"

const keyBytes = 32

// secretService implements SecretService with Argon2id.
type secretService struct {
	hasher *pwdhash.PasswordHasher
}

// NewSecretService creates a SecretService using the Moderate Argon2id policy.
func NewSecretService() SecretService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// Static policy; cannot fail.
		panic(err)
	}

	return &secretService{hasher: hasher}
}

func (s *secretService) GenerateSecret() (string, string, error) {
	raw := make([]byte, keyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate api key")
	}

	plain := KeyPrefix + base64.RawURLEncoding.EncodeToString(raw)

	hashed, err := s.HashSecret(plain)
	if err != nil {
		return "", "", err
	}
	return plain, hashed, nil
}

func (s *secretService) HashSecret(plainSecret string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plainSecret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash api key")
	}
	return hashed, nil
}

func (s *secretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	if hashedSecret == "" {
		return false
	}
	ok, err := s.hasher.Verify([]byte(plainSecret), hashedSecret)
	if err != nil {
		return false
	}
	return ok
}
