package sealbox

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SessionOption configures a SessionStore.
type SessionOption func(*SessionStore)

// ClientOption configures a Client.
type ClientOption func(*Client)

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithSessionClock sets the clock used for TTL decisions. Tests inject a
// fake clock to simulate expiry; production code uses the default
// (time.Now).
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSessionLogger sets the logger for session key lifecycle events.
// Only key fingerprints are ever logged, never key material.
func WithSessionLogger(logger *logrus.Logger) SessionOption {
	return func(s *SessionStore) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithSessionStore sets a preconfigured session store on a client, for
// sharing a store between clients or injecting a store built with
// WithSessionClock.
func WithSessionStore(store *SessionStore) ClientOption {
	return func(c *Client) {
		if store != nil {
			c.sessions = store
		}
	}
}

// WithClientLogger sets the client's logger.
func WithClientLogger(logger *logrus.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithSecretProvider sets where the server finds its private key.
// Default: EnvProvider.
func WithSecretProvider(provider SecretProvider) ServerOption {
	return func(s *Server) {
		if provider != nil {
			s.secrets = provider
		}
	}
}

// WithPrivateKeyPEM sets a fixed private key, bypassing environment
// lookup. Shorthand for WithSecretProvider(NewStaticProvider(pem)).
func WithPrivateKeyPEM(pem string) ServerOption {
	return func(s *Server) {
		s.secrets = NewStaticProvider(pem)
	}
}

// WithServerLogger sets the server's logger.
func WithServerLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.log = logger
		}
	}
}
