package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the size of raw keys accepted by EncryptBytes and DecryptBytes.
	KeySize = 32 // 256 bits for AES-256

	// SaltSize is the size of the random salt prefixed to passphrase ciphertexts.
	SaltSize = 16

	// Iterations is the PBKDF2 work factor used to stretch passphrases.
	Iterations = 210_000

	// hkdfInfo separates keys derived here from any other use of the same raw key.
	hkdfInfo = "babou-secrets-v1"
)

// ValidateKey checks that key has the length AES-256 needs.
func ValidateKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKey
	}
	return nil
}

// deriveFromKey expands a raw key with HKDF-SHA256.
// The caller should clear the result with clearBytes once done.
func deriveFromKey(key []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, key, nil, []byte(hkdfInfo))

	derived := make([]byte, KeySize)
	if _, err := io.ReadFull(r, derived); err != nil {
		return nil, err
	}
	return derived, nil
}

// deriveFromPassphrase stretches a passphrase with PBKDF2-SHA256.
func deriveFromPassphrase(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, Iterations, KeySize, sha256.New)
}

// clearBytes zeros b so key material does not outlive its use.
func clearBytes(b []byte) {
	clear(b)
}

// GenerateKey creates a new random 32-byte key suitable for EncryptBytes.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return key, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
