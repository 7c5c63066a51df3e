package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when AEAD decryption fails. The cause
	// (bad tag, truncated ciphertext, wrong key) is intentionally not
	// distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed is returned when AEAD encryption cannot proceed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrInvalidKeySize is returned when an AES key is not 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidEncoding is returned when base64url decoding fails.
	ErrInvalidEncoding = errors.New("invalid base64url encoding")

	// ErrInvalidPublicKey is returned when a public key PEM cannot be
	// parsed as an RSA key, or the key is too small.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key PEM cannot be
	// parsed as an RSA key, or the key is too small.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrWrapFailed is returned when RSA-OAEP wrapping fails.
	ErrWrapFailed = errors.New("key wrap failed")

	// ErrUnwrapFailed is returned when RSA-OAEP unwrapping fails. As with
	// ErrDecryptionFailed, the cause is not distinguished.
	ErrUnwrapFailed = errors.New("key unwrap failed")

	// ErrRandomFailed is returned when the system randomness source fails.
	ErrRandomFailed = errors.New("random source failed")
)
