package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the randomness source for key and nonce generation.
// Overridable in tests via SetRandReaderForTesting.
var randReader io.Reader = rand.Reader

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomFailed, err)
	}
	return buf, nil
}

// NewSessionKey returns a fresh random AES-256 key.
func NewSessionKey() ([]byte, error) {
	return RandomBytes(AESKeySize)
}
