package sealbox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealbox/sealbox-go/internal/pemutil"
)

func TestEnvProvider(t *testing.T) {
	_, priv := testKeys(t)

	t.Run("default variable", func(t *testing.T) {
		t.Setenv(PrivateKeyEnvVar, priv)

		got, ok := EnvProvider{}.PrivateKeyPEM()
		if !ok {
			t.Fatal("PrivateKeyPEM() should find the key")
		}
		if got != pemutil.Normalize(priv) {
			t.Error("PrivateKeyPEM() should return the normalized key")
		}
	})

	t.Run("custom variable", func(t *testing.T) {
		t.Setenv("SEALBOX_SERVER_KEY", priv)

		_, ok := EnvProvider{Var: "SEALBOX_SERVER_KEY"}.PrivateKeyPEM()
		if !ok {
			t.Fatal("PrivateKeyPEM() should find the key under the custom name")
		}
	})

	t.Run("unset", func(t *testing.T) {
		if _, ok := (EnvProvider{Var: "SEALBOX_DEFINITELY_UNSET"}).PrivateKeyPEM(); ok {
			t.Error("PrivateKeyPEM() should report false for an unset variable")
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		t.Setenv(PrivateKeyEnvVar, "   \n\t ")

		if _, ok := (EnvProvider{}).PrivateKeyPEM(); ok {
			t.Error("PrivateKeyPEM() should report false for a blank variable")
		}
	})

	t.Run("escaped newlines", func(t *testing.T) {
		mangled := `"` + strings.ReplaceAll(strings.TrimSpace(priv), "\n", `\n`) + `"`
		t.Setenv(PrivateKeyEnvVar, mangled)

		got, ok := EnvProvider{}.PrivateKeyPEM()
		if !ok {
			t.Fatal("PrivateKeyPEM() should find the key")
		}
		if got != pemutil.Normalize(priv) {
			t.Error("escaped form should normalize to the clean key")
		}
	})
}

func TestStaticProvider(t *testing.T) {
	_, priv := testKeys(t)

	t.Run("fixed key", func(t *testing.T) {
		got, ok := NewStaticProvider(priv).PrivateKeyPEM()
		if !ok {
			t.Fatal("PrivateKeyPEM() should return the key")
		}
		if got != pemutil.Normalize(priv) {
			t.Error("PrivateKeyPEM() should return the normalized key")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, ok := NewStaticProvider("").PrivateKeyPEM(); ok {
			t.Error("PrivateKeyPEM() should report false for an empty key")
		}
	})

	t.Run("zero value", func(t *testing.T) {
		if _, ok := (StaticProvider{}).PrivateKeyPEM(); ok {
			t.Error("zero-value provider should report false")
		}
	})
}

func TestDotenvProvider(t *testing.T) {
	pub, priv := testKeys(t)

	writeEnvFile := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing env file: %v", err)
		}
		return path
	}

	escaped := strings.ReplaceAll(strings.TrimSpace(priv), "\n", `\n`)

	t.Run("reads key", func(t *testing.T) {
		path := writeEnvFile(t, ".env", PrivateKeyEnvVar+`="`+escaped+`"`+"\n")

		got, ok := DotenvProvider{Path: path}.PrivateKeyPEM()
		if !ok {
			t.Fatal("PrivateKeyPEM() should find the key")
		}
		if got != pemutil.Normalize(priv) {
			t.Error("dotenv value should normalize to the clean key")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.env")

		if _, ok := (DotenvProvider{Path: path}).PrivateKeyPEM(); ok {
			t.Error("PrivateKeyPEM() should report false for a missing file")
		}
	})

	t.Run("missing variable", func(t *testing.T) {
		path := writeEnvFile(t, ".env", "OTHER_VAR=value\n")

		if _, ok := (DotenvProvider{Path: path}).PrivateKeyPEM(); ok {
			t.Error("PrivateKeyPEM() should report false when the variable is absent")
		}
	})

	t.Run("custom variable", func(t *testing.T) {
		path := writeEnvFile(t, ".env", `SERVER_KEY="`+escaped+`"`+"\n")

		if _, ok := (DotenvProvider{Path: path, Var: "SERVER_KEY"}).PrivateKeyPEM(); !ok {
			t.Error("PrivateKeyPEM() should find the key under the custom name")
		}
	})

	t.Run("server integration", func(t *testing.T) {
		path := writeEnvFile(t, ".env", PrivateKeyEnvVar+`="`+escaped+`"`+"\n")

		packet, err := EncryptHybrid(pub, "from dotenv")
		if err != nil {
			t.Fatalf("EncryptHybrid() error: %v", err)
		}

		srv := NewServer(WithSecretProvider(DotenvProvider{Path: path}))
		got, err := srv.DecryptHybrid(packet)
		if err != nil {
			t.Fatalf("DecryptHybrid() error: %v", err)
		}
		if got != "from dotenv" {
			t.Errorf("DecryptHybrid() = %q, want %q", got, "from dotenv")
		}
	})
}

func TestServer_ClientSideHasNoKey(t *testing.T) {
	// The client-side posture: no private key anywhere. Hybrid decryption
	// reports the absence cleanly instead of failing deep in the stack.
	pub, _ := testKeys(t)

	packet, err := EncryptHybrid(pub, "one way only")
	if err != nil {
		t.Fatalf("EncryptHybrid() error: %v", err)
	}

	srv := NewServer(WithSecretProvider(EnvProvider{Var: "SEALBOX_NO_SUCH_KEY"}))
	_, err = srv.DecryptHybrid(packet)
	if !errors.Is(err, ErrPrivateKeyUnavailable) {
		t.Errorf("DecryptHybrid() = %v, want ErrPrivateKeyUnavailable", err)
	}
}
