package sealbox

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/pemutil"
)

// SessionTTL is how long a cached session key may be reused. Expiry is
// evaluated lazily on access; there is no background timer.
const SessionTTL = 15 * time.Minute

// SessionKey describes the session key a store holds after EnsureKey.
// It is safe to transmit and serialize: the raw key never appears here,
// only its RSA-wrapped form.
type SessionKey struct {
	Version       int    `json:"v"`
	Alg           string `json:"alg"`
	SymAlg        string `json:"sym_alg"`
	WrappedKeyB64 string `json:"wrapped_key_b64"`
	Fresh         bool   `json:"fresh"`
	CreatedMS     int64  `json:"created_ms"`
}

// sessionState is the single cached session key. The raw key and its
// wrapped form always correspond to the same bytes; they are set together
// and never updated independently.
type sessionState struct {
	rawKey     []byte
	wrappedB64 string
	createdAt  time.Time
	boundPEM   string // normalized public key PEM the key is wrapped under
}

// SessionStore owns the single session key slot. All access runs under one
// mutex, so concurrent EnsureKey calls cannot race to produce two keys that
// disagree about which one is authoritative.
//
// A store never persists anything: session state lives in memory and dies
// with the process.
type SessionStore struct {
	mu    sync.Mutex
	state *sessionState

	now func() time.Time
	log *logrus.Logger
}

// NewSessionStore creates an empty session store.
func NewSessionStore(opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		now: time.Now,
		log: logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureKey returns a session key wrapped under publicKeyPEM, reusing the
// cached key when it is still valid. A cached key is valid while it is
// bound to the same public key (exact string equality of the normalized
// PEM) and younger than SessionTTL. Invalid or absent state forces
// regeneration, reported via Fresh=true.
//
// The whole read-check-generate-write sequence is one critical section.
// A failed generate or wrap leaves the previous state untouched.
func (s *SessionStore) EnsureKey(publicKeyPEM string) (*SessionKey, error) {
	norm := pemutil.Normalize(publicKeyPEM)

	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.state; st != nil && st.boundPEM == norm && !s.expiredLocked(st) {
		s.log.WithFields(logrus.Fields{
			"key_fingerprint": crypto.Fingerprint([]byte(norm)),
			"age":             s.now().Sub(st.createdAt),
		}).Debug("session key reused")

		return &SessionKey{
			Version:       PacketVersion,
			Alg:           AlgRSAOAEP256,
			SymAlg:        AlgAES256GCM,
			WrappedKeyB64: st.wrappedB64,
			Fresh:         false,
			CreatedMS:     st.createdAt.UnixMilli(),
		}, nil
	}

	pub, err := crypto.ParsePublicKey(norm)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	rawKey, err := crypto.NewSessionKey()
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	wrapped, err := crypto.Wrap(pub, rawKey)
	if err != nil {
		crypto.Zero(rawKey)
		return nil, wrapCryptoError(err)
	}

	if s.state != nil {
		crypto.Zero(s.state.rawKey)
	}
	created := s.now()
	s.state = &sessionState{
		rawKey:     rawKey,
		wrappedB64: crypto.ToBase64URL(wrapped),
		createdAt:  created,
		boundPEM:   norm,
	}

	s.log.WithFields(logrus.Fields{
		"key_fingerprint": crypto.Fingerprint([]byte(norm)),
	}).Debug("session key generated")

	return &SessionKey{
		Version:       PacketVersion,
		Alg:           AlgRSAOAEP256,
		SymAlg:        AlgAES256GCM,
		WrappedKeyB64: s.state.wrappedB64,
		Fresh:         true,
		CreatedMS:     created.UnixMilli(),
	}, nil
}

// RawKey returns a copy of the current raw session key, regardless of
// which public key it is bound to. It does not check expiry; the
// TTL-gated encryption paths do. The second return is false when no
// session key exists.
func (s *SessionStore) RawKey() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, false
	}
	key := make([]byte, len(s.state.rawKey))
	copy(key, s.state.rawKey)
	return key, true
}

// keyForEncrypt returns a copy of the raw key for outbound traffic. The
// TTL gate applies here: encrypting under a stale key is never allowed.
func (s *SessionStore) keyForEncrypt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoSessionKey
	}
	if s.expiredLocked(s.state) {
		return nil, ErrSessionExpired
	}
	key := make([]byte, len(s.state.rawKey))
	copy(key, s.state.rawKey)
	return key, nil
}

// keyForDecrypt returns a copy of the raw key for inbound traffic. Expiry
// is deliberately not re-checked: packets already encrypted under a
// still-resident key stay decryptable while outbound use is blocked.
func (s *SessionStore) keyForDecrypt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoSessionKey
	}
	key := make([]byte, len(s.state.rawKey))
	copy(key, s.state.rawKey)
	return key, nil
}

// expiredLocked reports whether st has outlived SessionTTL. Wall-clock
// based: a backward clock jump can extend apparent validity. Callers hold
// s.mu.
func (s *SessionStore) expiredLocked(st *sessionState) bool {
	return s.now().Sub(st.createdAt) > SessionTTL
}
