package sealbox

import (
	"errors"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrRandomUnavailable is returned when the host entropy source fails.
	ErrRandomUnavailable = errors.New("randomness unavailable")

	// ErrEncryption is returned when symmetric encryption fails.
	ErrEncryption = errors.New("encryption failed")

	// ErrAuthentication is returned when decryption fails. A bad tag, a
	// tampered nonce, and a wrong key are deliberately indistinguishable.
	ErrAuthentication = errors.New("authentication failed")

	// ErrWrap is returned when wrapping a session key under an RSA public
	// key fails.
	ErrWrap = errors.New("key wrap failed")

	// ErrUnwrap is returned when unwrapping a session key fails. The cause
	// is never distinguished.
	ErrUnwrap = errors.New("key unwrap failed")

	// ErrEncoding is returned when a base64url value cannot be decoded.
	ErrEncoding = errors.New("invalid encoding")

	// ErrDecode is returned when packet JSON is malformed or a required
	// field is missing or invalid.
	ErrDecode = errors.New("invalid packet")

	// ErrUnsupportedAlgorithm is returned when a packet asserts an
	// algorithm identifier other than the two pinned constants.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeyLength is returned when an unwrapped session key is not
	// exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid session key length")

	// ErrInvalidPlaintext is returned when decrypted bytes are not valid
	// UTF-8.
	ErrInvalidPlaintext = errors.New("plaintext is not valid UTF-8")

	// ErrNoSessionKey is returned when a session operation runs before any
	// session key exists. Call EnsureSessionKey first.
	ErrNoSessionKey = errors.New("no session key")

	// ErrSessionExpired is returned when the cached session key is older
	// than SessionTTL.
	ErrSessionExpired = errors.New("session key expired")

	// ErrPrivateKeyUnavailable is returned when no private key material is
	// configured. This is the expected state on the client side.
	ErrPrivateKeyUnavailable = errors.New("private key unavailable")

	// ErrInvalidPublicKey is returned when a public key PEM is rejected.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key PEM is rejected.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// SealboxError is implemented by all typed SDK errors.
type SealboxError interface {
	error
	SealboxError() // marker method
}

// PacketError reports packet JSON that failed structural validation.
type PacketError struct {
	Field string // offending field, empty when the JSON itself is malformed
	Err   error
}

func (e *PacketError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid packet: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid packet: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *PacketError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PacketError) Is(target error) bool {
	return target == ErrDecode
}

// SealboxError implements the SealboxError interface.
func (e *PacketError) SealboxError() {}

// AlgorithmError reports a packet asserting an unsupported algorithm.
type AlgorithmError struct {
	Field string // "alg" or "sym_alg"
	Got   string
	Want  string
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm: %s is %q, want %q", e.Field, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *AlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}

// SealboxError implements the SealboxError interface.
func (e *AlgorithmError) SealboxError() {}

// KeyLengthError reports an unwrapped session key of the wrong size.
type KeyLengthError struct {
	Got int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("unwrapped session key is %d bytes, want %d", e.Got, SessionKeySize)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// SealboxError implements the SealboxError interface.
func (e *KeyLengthError) SealboxError() {}

// KeyError reports RSA key material that could not be parsed or was too
// weak to use.
type KeyError struct {
	Private bool // true when the private key was rejected
	Err     error
}

func (e *KeyError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	if e.Private {
		return target == ErrInvalidPrivateKey
	}
	return target == ErrInvalidPublicKey
}

// SealboxError implements the SealboxError interface.
func (e *KeyError) SealboxError() {}

// wrapCryptoError converts internal crypto errors to public sentinel errors
// so that errors.Is() checks work correctly. Authentication and unwrap
// failures map to bare sentinels: their causes stay generic on purpose.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidPublicKey):
		return &KeyError{Err: err}
	case errors.Is(err, crypto.ErrInvalidPrivateKey):
		return &KeyError{Private: true, Err: err}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return ErrAuthentication
	case errors.Is(err, crypto.ErrInvalidNonceSize):
		// Only Open reports this; a wrong-sized nonce is tampering.
		return ErrAuthentication
	case errors.Is(err, crypto.ErrUnwrapFailed):
		return ErrUnwrap
	case errors.Is(err, crypto.ErrWrapFailed):
		return ErrWrap
	case errors.Is(err, crypto.ErrRandomFailed):
		return ErrRandomUnavailable
	case errors.Is(err, crypto.ErrInvalidEncoding):
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	case errors.Is(err, crypto.ErrInvalidKeySize):
		return fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	case errors.Is(err, crypto.ErrEncryptionFailed):
		return fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	return err
}
