package sealbox

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Client is the session-holding side of the protocol. It owns a
// SessionStore and encrypts outbound (and decrypts inbound) session
// traffic under the cached session key. A Client never touches private
// key material; it only ever sees the peer's public key.
type Client struct {
	sessions *SessionStore
	log      *logrus.Logger
}

// NewClient creates a client with an empty session store.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		log: logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessions == nil {
		c.sessions = NewSessionStore()
	}
	return c
}

// EnsureSessionKey returns a session key wrapped under publicKeyPEM,
// generating one if the store holds none, an expired one, or one bound to
// a different public key. The returned SessionKey is safe to send to the
// peer; Fresh reports whether a new key was generated.
func (c *Client) EnsureSessionKey(publicKeyPEM string) (*SessionKey, error) {
	return c.sessions.EnsureKey(publicKeyPEM)
}

// EncryptWithSession encrypts plaintext under the cached session key.
// It fails with ErrNoSessionKey when no session exists and ErrSessionExpired
// when the key has outlived SessionTTL; call EnsureSessionKey first.
func (c *Client) EncryptWithSession(plaintext string) (*SessionPacket, error) {
	key, err := c.sessions.keyForEncrypt()
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	nonce, ciphertext, err := crypto.Seal(key, []byte(plaintext))
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	c.log.WithField("plaintext_bytes", len(plaintext)).Debug("session packet encrypted")

	return newSessionPacket(nonce, ciphertext), nil
}

// DecryptWithSession decrypts an inbound session packet under the cached
// session key. It fails with ErrNoSessionKey when no session exists, but
// does not re-check expiry: a packet encrypted under a still-resident key
// stays decryptable after the TTL gate has closed for outbound traffic.
func (c *Client) DecryptWithSession(packet *SessionPacket) (string, error) {
	if err := packet.Validate(); err != nil {
		return "", err
	}
	nonce, ciphertext, err := packet.decode()
	if err != nil {
		return "", err
	}

	key, err := c.sessions.keyForDecrypt()
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
