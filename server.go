package sealbox

import (
	"crypto/rsa"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/pemutil"
)

// Server is the private-key side of the protocol. It holds no session
// state: the wrapped session key arrives with (or alongside) every packet
// and is unwrapped fresh on each call. Statelessness keeps any number of
// server processes interchangeable behind a load balancer.
type Server struct {
	secrets SecretProvider
	log     *logrus.Logger
}

// NewServer creates a server that reads its private key through a
// SecretProvider. The default provider reads the PRIVATE_KEY_PEM
// environment variable.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		secrets: EnvProvider{},
		log:     logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// privateKey fetches and parses the private key. Absence of key material
// is the normal state on the client side, reported as
// ErrPrivateKeyUnavailable rather than treated as fatal.
func (s *Server) privateKey() (*rsa.PrivateKey, error) {
	pemStr, ok := s.secrets.PrivateKeyPEM()
	if !ok {
		return nil, ErrPrivateKeyUnavailable
	}

	priv, err := crypto.ParsePrivateKey(pemutil.Normalize(pemStr))
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return priv, nil
}

// DecryptHybrid opens a self-contained hybrid packet: unwrap the carried
// session key with the private key, check it is exactly 32 bytes, decrypt,
// and require the result to be valid UTF-8.
func (s *Server) DecryptHybrid(packet *HybridPacket) (string, error) {
	if err := packet.Validate(); err != nil {
		return "", err
	}
	nonce, wrapped, ciphertext, err := packet.decode()
	if err != nil {
		return "", err
	}

	priv, err := s.privateKey()
	if err != nil {
		return "", err
	}

	key, err := crypto.Unwrap(priv, wrapped)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	defer crypto.Zero(key)

	if len(key) != SessionKeySize {
		return "", &KeyLengthError{Got: len(key)}
	}

	plaintext, err := crypto.Open(key, nonce, ciphertext)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidPlaintext
	}

	return string(plaintext), nil
}

// DecryptWithWrapped decrypts a session packet using the wrapped session
// key the client obtained from EnsureSessionKey. The key is unwrapped
// fresh on every call; unwrapped keys are never cached server-side.
func (s *Server) DecryptWithWrapped(wrappedKeyB64 string, packet *SessionPacket) (string, error) {
	if err := packet.Validate(); err != nil {
		return "", err
	}
	nonce, ciphertext, err := packet.decode()
	if err != nil {
		return "", err
	}

	key, err := s.unwrapSessionKey(wrappedKeyB64)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(key)

	plaintext, err := crypto.Open(key, nonce, ciphertext)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidPlaintext
	}

	return string(plaintext), nil
}

// EncryptWithWrapped encrypts outbound server traffic under the session
// key carried in wrappedKeyB64, mirroring DecryptWithWrapped.
func (s *Server) EncryptWithWrapped(wrappedKeyB64, plaintext string) (*SessionPacket, error) {
	key, err := s.unwrapSessionKey(wrappedKeyB64)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	nonce, ciphertext, err := crypto.Seal(key, []byte(plaintext))
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	s.log.WithField("plaintext_bytes", len(plaintext)).Debug("session packet encrypted")

	return newSessionPacket(nonce, ciphertext), nil
}

// unwrapSessionKey decodes and unwraps a client-supplied wrapped key and
// enforces the 32-byte length invariant before the key is ever used.
func (s *Server) unwrapSessionKey(wrappedKeyB64 string) ([]byte, error) {
	wrapped, err := crypto.FromBase64URL(wrappedKeyB64)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	priv, err := s.privateKey()
	if err != nil {
		return nil, err
	}

	key, err := crypto.Unwrap(priv, wrapped)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	if len(key) != SessionKeySize {
		crypto.Zero(key)
		return nil, &KeyLengthError{Got: len(key)}
	}
	return key, nil
}
