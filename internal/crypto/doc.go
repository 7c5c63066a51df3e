// Package crypto provides the cryptographic primitives for the Sealbox
// protocol. It implements authenticated symmetric encryption, RSA key
// wrapping, and the key-handling helpers around them, using the algorithms
// the protocol pins.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for encrypting payloads. Provides confidentiality and integrity with
//     a 256-bit key, 96-bit nonce, and 128-bit tag.
//
//   - RSA-OAEP with SHA-256: Asymmetric wrapping of the 256-bit session
//     key under the recipient's RSA public key. Keys below 2048 bits are
//     rejected.
//
// # Security Model
//
// The scheme provides:
//
//   - Confidentiality: only the holder of the RSA private key can recover
//     the wrapped session key, and only that key decrypts the payload.
//   - Integrity: tampering with a nonce or ciphertext causes decryption
//     to fail.
//
// Decryption failures are deliberately generic: a bad tag, a truncated
// ciphertext, and a wrong key are indistinguishable to callers. [Open]
// must never report which of these occurred.
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing
// attackers to recover the authentication key and forge messages. [Seal]
// therefore draws a fresh random nonce on every call and never accepts
// one from the caller.
//
// # Key Management
//
// Use [GenerateKeyPair] to create an RSA keypair in PEM form. Public keys
// parse from PKIX ("PUBLIC KEY") or PKCS#1 ("RSA PUBLIC KEY") blocks;
// private keys from PKCS#8 ("PRIVATE KEY") or PKCS#1 ("RSA PRIVATE KEY")
// blocks.
//
// Keep private keys and raw session keys secure. They must never be
// logged, embedded in error messages, or stored in version control. Use
// [Zero] to wipe raw key material before it leaves scope, and
// [Fingerprint] when a loggable identifier for key material is needed.
//
// # Base64 Encoding
//
// All protocol values (nonces, wrapped keys, ciphertexts) travel as
// URL-safe base64 without padding (RFC 4648 §5) via [ToBase64URL] and
// [FromBase64URL]. Decoding is strict: padded or otherwise malformed
// input is rejected.
package crypto
