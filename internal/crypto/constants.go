package crypto

const (
	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// MinRSABits is the smallest RSA modulus accepted for wrapping keys.
	// 2048-bit RSA-OAEP-SHA256 leaves 190 bytes of message capacity, far
	// above the 32-byte session key it carries.
	MinRSABits = 2048

	// FingerprintLen is the number of hash bytes kept in a key fingerprint.
	FingerprintLen = 10
)

const (
	// AlgRSAOAEP256 is the wire identifier for RSA-OAEP with SHA-256.
	AlgRSAOAEP256 = "RSA-OAEP-256"
	// AlgAES256GCM is the wire identifier for AES-256-GCM.
	AlgAES256GCM = "AES-256-GCM"
)
