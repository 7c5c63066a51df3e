package sealbox

import (
	"sync"
	"testing"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

var (
	testKeysOnce sync.Once
	testPubPEM   string
	testPrivPEM  string
	testKeysErr  error
)

// testKeys returns a shared RSA-2048 key pair in PEM form. Key generation
// is slow, so one pair is generated and reused across the suite.
func testKeys(t testing.TB) (publicPEM, privatePEM string) {
	t.Helper()
	testKeysOnce.Do(func() {
		testPubPEM, testPrivPEM, testKeysErr = crypto.GenerateKeyPair(2048)
	})
	if testKeysErr != nil {
		t.Fatalf("generating test keys: %v", testKeysErr)
	}
	return testPubPEM, testPrivPEM
}

var (
	altKeysOnce sync.Once
	altPubPEM   string
	altPrivPEM  string
	altKeysErr  error
)

// altKeys returns a second shared key pair for wrong-key and rebinding
// tests.
func altKeys(t testing.TB) (publicPEM, privatePEM string) {
	t.Helper()
	altKeysOnce.Do(func() {
		altPubPEM, altPrivPEM, altKeysErr = crypto.GenerateKeyPair(2048)
	})
	if altKeysErr != nil {
		t.Fatalf("generating alternate test keys: %v", altKeysErr)
	}
	return altPubPEM, altPrivPEM
}
