package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of key material, safe to log
// in place of the material itself.
//
// It hashes with SHA-256 and truncates to FingerprintLen bytes (20 hex chars).
func Fingerprint(material []byte) string {
	sum := sha256.Sum256(material)
	return hex.EncodeToString(sum[:FingerprintLen])
}
