package ecc

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// Curve identifies an elliptic curve supported by this adapter.
type Curve struct {
	name string
}

// Supported curves.
var (
	Secp256k1 = Curve{name: "secp256k1"}
	Ed25519   = Curve{name: "ed25519"}
)

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	if c.name == "" {
		return "unknown"
	}
	return c.name
}

// PrivateKey wraps a curve private key. Its only capability is signing;
// verification lives on PublicKey.
type PrivateKey struct {
	curve Curve
	secp  *btcec.PrivateKey
	ed    ed25519.PrivateKey
}

// PublicKey wraps a curve public key.
type PublicKey struct {
	curve Curve
	secp  *btcec.PublicKey
	ed    ed25519.PublicKey
}

// GenerateKey generates a key pair on the given curve.
func GenerateKey(c Curve) (*PrivateKey, error) {
	switch c {
	case Secp256k1:
		key, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, cask.Errorf("ecc.GenerateKey", "%w", err)
		}
		return &PrivateKey{curve: c, secp: key}, nil
	case Ed25519:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, cask.Errorf("ecc.GenerateKey", "%w", err)
		}
		return &PrivateKey{curve: c, ed: key}, nil
	default:
		return nil, cask.Errorf("ecc.GenerateKey", "unsupported curve %v", c)
	}
}

// Curve returns the curve the key lives on.
func (k *PrivateKey) Curve() Curve { return k.curve }

// Curve returns the curve the key lives on.
func (k *PublicKey) Curve() Curve { return k.curve }

// Public returns the public half of the key.
func (k *PrivateKey) Public() *PublicKey {
	switch k.curve {
	case Secp256k1:
		return &PublicKey{curve: k.curve, secp: k.secp.PubKey()}
	default:
		pub := k.ed.Public().(ed25519.PublicKey)
		return &PublicKey{curve: k.curve, ed: pub}
	}
}

// Bytes returns the serialized private scalar: 32 bytes for secp256k1, the
// 32-byte seed for Ed25519. The buffer is sensitive; zeroize it with
// cask.ZeroizeBytes when done.
func (k *PrivateKey) Bytes() []byte {
	switch k.curve {
	case Secp256k1:
		return k.secp.Serialize()
	default:
		return k.ed.Seed()
	}
}

// Bytes returns the serialized public key: compressed point for secp256k1,
// the 32-byte key for Ed25519.
func (k *PublicKey) Bytes() []byte {
	switch k.curve {
	case Secp256k1:
		return k.secp.SerializeCompressed()
	default:
		out := make([]byte, len(k.ed))
		copy(out, k.ed)
		return out
	}
}

// LoadPrivateKey deserializes a private key produced by PrivateKey.Bytes.
func LoadPrivateKey(c Curve, data []byte) (*PrivateKey, error) {
	switch c {
	case Secp256k1:
		if len(data) != 32 {
			return nil, cask.Errorf("ecc.LoadPrivateKey", "secp256k1 key must be 32 bytes, got %d", len(data))
		}
		key, _ := btcec.PrivKeyFromBytes(data)
		return &PrivateKey{curve: c, secp: key}, nil
	case Ed25519:
		if len(data) != ed25519.SeedSize {
			return nil, cask.Errorf("ecc.LoadPrivateKey", "ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(data))
		}
		return &PrivateKey{curve: c, ed: ed25519.NewKeyFromSeed(data)}, nil
	default:
		return nil, cask.Errorf("ecc.LoadPrivateKey", "unsupported curve %v", c)
	}
}

// LoadPublicKey deserializes a public key produced by PublicKey.Bytes.
func LoadPublicKey(c Curve, data []byte) (*PublicKey, error) {
	switch c {
	case Secp256k1:
		key, err := btcec.ParsePubKey(data)
		if err != nil {
			return nil, cask.Errorf("ecc.LoadPublicKey", "%w", err)
		}
		return &PublicKey{curve: c, secp: key}, nil
	case Ed25519:
		if len(data) != ed25519.PublicKeySize {
			return nil, cask.Errorf("ecc.LoadPublicKey", "ed25519 key must be %d bytes, got %d", ed25519.PublicKeySize, len(data))
		}
		pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
		copy(pub, data)
		return &PublicKey{curve: c, ed: pub}, nil
	default:
		return nil, cask.Errorf("ecc.LoadPublicKey", "unsupported curve %v", c)
	}
}
