package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
)

// EncryptString encrypts plaintext with a key stretched from passphrase.
// Each call draws a fresh salt and nonce, so equal inputs give different
// outputs. The result is base64 of salt | nonce | ciphertext.
func EncryptString(passphrase, plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptySource
	}
	if passphrase == "" {
		return "", ErrEmptyKey
	}

	salt, err := randomBytes(SaltSize)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	key := deriveFromPassphrase(passphrase, salt)
	defer clearBytes(key)

	sealed, err := seal(key, []byte(plaintext))
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, len(salt)+len(sealed))
	out = append(out, salt...)
	out = append(out, sealed...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString reverses EncryptString. A wrong passphrase or a tampered
// ciphertext fails with ErrDecryptionFailed.
func DecryptString(passphrase, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", ErrEmptySource
	}
	if passphrase == "" {
		return "", ErrEmptyKey
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	if len(raw) < SaltSize {
		return "", ErrInvalidCiphertext
	}

	key := deriveFromPassphrase(passphrase, raw[:SaltSize])
	defer clearBytes(key)

	plaintext, err := open(key, raw[SaltSize:])
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptBytes encrypts data under a 32-byte key.
// Returns ciphertext in format: nonce + encrypted data + tag
func EncryptBytes(key, data []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	derived, err := deriveFromKey(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	defer clearBytes(derived)

	return seal(derived, data)
}

// DecryptBytes decrypts the output of EncryptBytes.
func DecryptBytes(key, ciphertext []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	derived, err := deriveFromKey(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	defer clearBytes(derived)

	return open(derived, ciphertext)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal prepends a random nonce to the sealed data.
func seal(key, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	nonce, err := randomBytes(aesGCM.NonceSize())
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return aesGCM.Seal(nonce, nonce, data, nil), nil
}

func open(key, ciphertext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize+aesGCM.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
