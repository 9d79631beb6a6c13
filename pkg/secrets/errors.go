package secrets

import "errors"

var (
	// Input errors
	ErrEmptySource = errors.New("nothing to encrypt or decrypt")
	ErrEmptyKey    = errors.New("passphrase is empty")
	ErrInvalidKey  = errors.New("invalid key: must be 32 bytes")

	// Encryption/decryption errors
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")
)
