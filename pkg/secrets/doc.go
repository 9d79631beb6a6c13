// Package secrets encrypts short strings and byte slices with AES-256-GCM.
//
// Two entry points are offered. EncryptString and DecryptString take a
// passphrase: a 32-byte key is stretched from it with PBKDF2-SHA256 over a
// random salt, and the output is a base64 string holding the salt, the nonce
// and the sealed data. EncryptBytes and DecryptBytes take a raw 32-byte key
// (see GenerateKey) and expand it with HKDF-SHA256 before use.
//
// Every encryption uses a fresh nonce, so encrypting the same input twice
// yields different output. GCM authenticates the data: a wrong key or a
// modified ciphertext is reported as ErrDecryptionFailed.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/secrets"
//
//	ct, err := secrets.EncryptString("correct horse battery staple", "api-token")
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := secrets.DecryptString("correct horse battery staple", ct)
//	if err != nil {
//	    // handle error
//	}
//
//	// Raw keys skip the passphrase stretching step
//	key, _ := secrets.GenerateKey()
//	sealed, _ := secrets.EncryptBytes(key, []byte("payload"))
//	data, _ := secrets.DecryptBytes(key, sealed)
//
// # Error Handling
//
// Empty input fails with ErrEmptySource and an empty passphrase with
// ErrEmptyKey. Keys of the wrong size fail with ErrInvalidKey. Malformed
// input wraps ErrInvalidCiphertext. Use errors.Is to match against these
// sentinels.
//
// # Compatibility
//
// The string format is specific to this package. It cannot read ciphertexts
// produced by other AES-CBC based tools.
package secrets
