package sealbox

import (
	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/pemutil"
)

// EncryptHybrid encrypts plaintext for the holder of publicKeyPEM as a
// self-contained packet. A one-shot 32-byte key encrypts the plaintext,
// then travels RSA-wrapped inside the packet, so the recipient needs only
// its private key. No session state is touched; for repeated exchanges
// with the same peer, sessions amortize the RSA work.
func EncryptHybrid(publicKeyPEM, plaintext string) (*HybridPacket, error) {
	pub, err := crypto.ParsePublicKey(pemutil.Normalize(publicKeyPEM))
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	key, err := crypto.NewSessionKey()
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	defer crypto.Zero(key)

	nonce, ciphertext, err := crypto.Seal(key, []byte(plaintext))
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	wrapped, err := crypto.Wrap(pub, key)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return newHybridPacket(nonce, wrapped, ciphertext), nil
}
