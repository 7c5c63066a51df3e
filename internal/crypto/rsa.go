package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// ParsePublicKey parses a PEM-encoded RSA public key. The PEM block must be
// of type "PUBLIC KEY" (PKIX) or "RSA PUBLIC KEY" (PKCS#1). Keys smaller
// than MinRSABits are rejected.
func ParsePublicKey(pemStr string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPublicKey)
	}

	var key *rsa.PublicKey

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		rsaKey, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key, got %T", ErrInvalidPublicKey, parsed)
		}
		key = rsaKey

	case "RSA PUBLIC KEY":
		rsaKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		key = rsaKey

	default:
		return nil, fmt.Errorf("%w: unsupported PEM block type %q", ErrInvalidPublicKey, block.Type)
	}

	if bits := key.N.BitLen(); bits < MinRSABits {
		return nil, fmt.Errorf("%w: key is %d bits, need at least %d", ErrInvalidPublicKey, bits, MinRSABits)
	}

	return key, nil
}

// ParsePrivateKey parses a PEM-encoded RSA private key. The PEM block must
// be of type "PRIVATE KEY" (PKCS#8) or "RSA PRIVATE KEY" (PKCS#1). Keys
// smaller than MinRSABits are rejected.
func ParsePrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPrivateKey)
	}

	var key *rsa.PrivateKey

	switch block.Type {
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key, got %T", ErrInvalidPrivateKey, parsed)
		}
		key = rsaKey

	case "RSA PRIVATE KEY":
		rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
		}
		key = rsaKey

	default:
		return nil, fmt.Errorf("%w: unsupported PEM block type %q", ErrInvalidPrivateKey, block.Type)
	}

	if bits := key.N.BitLen(); bits < MinRSABits {
		return nil, fmt.Errorf("%w: key is %d bits, need at least %d", ErrInvalidPrivateKey, bits, MinRSABits)
	}

	return key, nil
}

// Wrap encrypts a session key under pub using RSA-OAEP with SHA-256 and an
// empty label.
func Wrap(pub *rsa.PublicKey, key []byte) ([]byte, error) {
	wrapped, err := rsa.EncryptOAEP(sha256.New(), randReader, pub, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}
	return wrapped, nil
}

// Unwrap decrypts a wrapped session key with priv. All failures collapse
// into ErrUnwrapFailed; OAEP decryption errors carry no cause detail.
func Unwrap(priv *rsa.PrivateKey, wrapped []byte) ([]byte, error) {
	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, ErrUnwrapFailed
	}
	return key, nil
}

// GenerateKeyPair creates a new RSA keypair of the given bit size and
// returns it PEM-encoded: the public key as a PKIX "PUBLIC KEY" block, the
// private key as a PKCS#8 "PRIVATE KEY" block.
func GenerateKeyPair(bits int) (publicPEM, privatePEM string, err error) {
	if bits < MinRSABits {
		return "", "", fmt.Errorf("%w: %d bits, need at least %d", ErrInvalidPrivateKey, bits, MinRSABits)
	}

	key, err := rsa.GenerateKey(randReader, bits)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrRandomFailed, err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("marshaling public key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", fmt.Errorf("marshaling private key: %w", err)
	}

	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	privatePEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	return publicPEM, privatePEM, nil
}
