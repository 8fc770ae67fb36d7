// Package service hashes and verifies the admin API key.
package service

// SecretService generates and verifies API keys. Only the hash is ever
// configured on the server; the plain key is shown once.
type SecretService interface {
	// GenerateSecret returns a fresh plain key and its hash.
	GenerateSecret() (plainSecret string, hashedSecret string, err error)

	// HashSecret hashes a plain key.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret reports whether plainSecret matches hashedSecret in
	// constant time. Malformed hashes never match.
	CompareSecret(plainSecret string, hashedSecret string) bool
}
