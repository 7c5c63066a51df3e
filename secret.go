package sealbox

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sealbox/sealbox-go/internal/pemutil"
)

// PrivateKeyEnvVar is the environment variable the default provider reads
// the server's private key PEM from.
const PrivateKeyEnvVar = "PRIVATE_KEY_PEM"

// SecretProvider supplies the server's private key material. The boolean
// is false when no key is available, which is the expected state on the
// client side.
//
// Implementations must never log, print, or persist the key material they
// hand out.
type SecretProvider interface {
	PrivateKeyPEM() (string, bool)
}

// EnvProvider reads the private key from the process environment. The
// value is normalized, so keys pasted with escaped newlines or quotes
// work as-is.
type EnvProvider struct {
	// Var overrides the variable name. Empty means PrivateKeyEnvVar.
	Var string
}

// PrivateKeyPEM implements SecretProvider.
func (p EnvProvider) PrivateKeyPEM() (string, bool) {
	name := p.Var
	if name == "" {
		name = PrivateKeyEnvVar
	}

	val, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return pemutil.Normalize(val), true
}

// StaticProvider returns a fixed private key. Intended for tests and for
// hosts that load key material through their own machinery.
type StaticProvider struct {
	pem string
}

// NewStaticProvider creates a provider around a fixed PEM string. The PEM
// is normalized once here.
func NewStaticProvider(pem string) StaticProvider {
	return StaticProvider{pem: pemutil.Normalize(pem)}
}

// PrivateKeyPEM implements SecretProvider.
func (p StaticProvider) PrivateKeyPEM() (string, bool) {
	if p.pem == "" {
		return "", false
	}
	return p.pem, true
}

// DotenvProvider reads the private key from a .env file without mutating
// the process environment.
type DotenvProvider struct {
	// Path is the .env file location. Empty means "./.env".
	Path string
	// Var overrides the variable name. Empty means PrivateKeyEnvVar.
	Var string
}

// PrivateKeyPEM implements SecretProvider. A missing or unreadable file
// reports no key rather than an error; the server maps that to
// ErrPrivateKeyUnavailable.
func (p DotenvProvider) PrivateKeyPEM() (string, bool) {
	path := p.Path
	if path == "" {
		path = ".env"
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return "", false
	}

	name := p.Var
	if name == "" {
		name = PrivateKeyEnvVar
	}

	val, ok := env[name]
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return pemutil.Normalize(val), true
}
