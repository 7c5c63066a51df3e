package sealbox

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Wire constants pinned by the protocol. Packets asserting any other
// version or algorithm identifiers are rejected outright.
const (
	// PacketVersion is the only supported packet format version.
	PacketVersion = 1

	// AlgRSAOAEP256 identifies RSA-OAEP with SHA-256 key wrapping.
	AlgRSAOAEP256 = crypto.AlgRSAOAEP256

	// AlgAES256GCM identifies AES-256-GCM payload encryption.
	AlgAES256GCM = crypto.AlgAES256GCM

	// SessionKeySize is the size of a raw session key in bytes.
	SessionKeySize = crypto.AESKeySize

	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = crypto.AESNonceSize
)

var errFieldRequired = errors.New("field is required")

// HybridPacket is the self-contained envelope produced by EncryptHybrid:
// the RSA-wrapped session key travels inside the packet, so the recipient
// needs only its private key to decrypt.
type HybridPacket struct {
	Version       int    `json:"v"`
	Alg           string `json:"alg"`
	SymAlg        string `json:"sym_alg"`
	NonceB64      string `json:"nonce_b64"`
	WrappedKeyB64 string `json:"wrapped_key_b64"`
	CiphertextB64 string `json:"ciphertext_b64"`
}

// ParseHybridPacket decodes and validates hybrid packet JSON.
func ParseHybridPacket(data []byte) (*HybridPacket, error) {
	var p HybridPacket
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &PacketError{Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the packet's version, algorithm identifiers, and
// required fields. Binary field contents are checked at decryption time.
func (p *HybridPacket) Validate() error {
	if p.Version != PacketVersion {
		return &PacketError{Field: "v", Err: fmt.Errorf("unsupported version %d, expected %d", p.Version, PacketVersion)}
	}
	if p.Alg != AlgRSAOAEP256 {
		return &AlgorithmError{Field: "alg", Got: p.Alg, Want: AlgRSAOAEP256}
	}
	if p.SymAlg != AlgAES256GCM {
		return &AlgorithmError{Field: "sym_alg", Got: p.SymAlg, Want: AlgAES256GCM}
	}
	if p.NonceB64 == "" {
		return &PacketError{Field: "nonce_b64", Err: errFieldRequired}
	}
	if p.WrappedKeyB64 == "" {
		return &PacketError{Field: "wrapped_key_b64", Err: errFieldRequired}
	}
	if p.CiphertextB64 == "" {
		return &PacketError{Field: "ciphertext_b64", Err: errFieldRequired}
	}
	return nil
}

// Marshal encodes the packet as compact JSON.
func (p *HybridPacket) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// decode returns the packet's binary fields. Field lengths are not checked
// here; the AEAD layer treats a wrong-sized nonce as tampering.
func (p *HybridPacket) decode() (nonce, wrapped, ciphertext []byte, err error) {
	if nonce, err = decodeField("nonce_b64", p.NonceB64); err != nil {
		return nil, nil, nil, err
	}
	if wrapped, err = decodeField("wrapped_key_b64", p.WrappedKeyB64); err != nil {
		return nil, nil, nil, err
	}
	if ciphertext, err = decodeField("ciphertext_b64", p.CiphertextB64); err != nil {
		return nil, nil, nil, err
	}
	return nonce, wrapped, ciphertext, nil
}

// SessionPacket is the lightweight envelope for session-based exchange.
// It carries no key material: the session key is cached on the client and
// supplied out-of-band (as a wrapped key) on the server.
type SessionPacket struct {
	Version       int    `json:"v"`
	SymAlg        string `json:"sym_alg"`
	NonceB64      string `json:"nonce_b64"`
	CiphertextB64 string `json:"ciphertext_b64"`
}

// ParseSessionPacket decodes and validates session packet JSON.
func ParseSessionPacket(data []byte) (*SessionPacket, error) {
	var p SessionPacket
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &PacketError{Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the packet's version, algorithm identifier, and
// required fields.
func (p *SessionPacket) Validate() error {
	if p.Version != PacketVersion {
		return &PacketError{Field: "v", Err: fmt.Errorf("unsupported version %d, expected %d", p.Version, PacketVersion)}
	}
	if p.SymAlg != AlgAES256GCM {
		return &AlgorithmError{Field: "sym_alg", Got: p.SymAlg, Want: AlgAES256GCM}
	}
	if p.NonceB64 == "" {
		return &PacketError{Field: "nonce_b64", Err: errFieldRequired}
	}
	if p.CiphertextB64 == "" {
		return &PacketError{Field: "ciphertext_b64", Err: errFieldRequired}
	}
	return nil
}

// Marshal encodes the packet as compact JSON.
func (p *SessionPacket) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func (p *SessionPacket) decode() (nonce, ciphertext []byte, err error) {
	if nonce, err = decodeField("nonce_b64", p.NonceB64); err != nil {
		return nil, nil, err
	}
	if ciphertext, err = decodeField("ciphertext_b64", p.CiphertextB64); err != nil {
		return nil, nil, err
	}
	return nonce, ciphertext, nil
}

func decodeField(field, value string) ([]byte, error) {
	data, err := crypto.FromBase64URL(value)
	if err != nil {
		return nil, &PacketError{Field: field, Err: wrapCryptoError(err)}
	}
	return data, nil
}

func newHybridPacket(nonce, wrapped, ciphertext []byte) *HybridPacket {
	return &HybridPacket{
		Version:       PacketVersion,
		Alg:           AlgRSAOAEP256,
		SymAlg:        AlgAES256GCM,
		NonceB64:      crypto.ToBase64URL(nonce),
		WrappedKeyB64: crypto.ToBase64URL(wrapped),
		CiphertextB64: crypto.ToBase64URL(ciphertext),
	}
}

func newSessionPacket(nonce, ciphertext []byte) *SessionPacket {
	return &SessionPacket{
		Version:       PacketVersion,
		SymAlg:        AlgAES256GCM,
		NonceB64:      crypto.ToBase64URL(nonce),
		CiphertextB64: crypto.ToBase64URL(ciphertext),
	}
}
