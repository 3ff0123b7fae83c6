package ecc

import (
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

// Signer is a signing context bound to a private key. Created by
// PrivateKey.Signer; stateless after construction.
type Signer struct {
	key *PrivateKey
}

// Verifier is the public-key counterpart of Signer.
type Verifier struct {
	key *PublicKey
}

// Signer creates a signing context for the key.
func (k *PrivateKey) Signer() *Signer { return &Signer{key: k} }

// Verifier creates a verification context for the key.
func (k *PublicKey) Verifier() *Verifier { return &Verifier{key: k} }

// Sign signs the digest held by msghash.
//
// secp256k1 signatures are deterministic RFC 6979 ECDSA, DER-encoded, and
// require a 32-byte digest. Ed25519 signs the digest bytes directly (the
// pre-hashed Ed25519 construction), so any digest length is accepted.
func (s *Signer) Sign(msghash hash.Hash) ([]byte, error) {
	if msghash == nil {
		return nil, cask.Errorf("ecc.Sign", "nil digest object")
	}
	digest, err := msghash.Digest()
	if err != nil {
		return nil, err
	}
	switch s.key.curve {
	case Secp256k1:
		if len(digest) != 32 {
			return nil, cask.Errorf("ecc.Sign", "secp256k1 requires a 32-byte digest, got %d", len(digest))
		}
		return btcecdsa.Sign(s.key.secp, digest).Serialize(), nil
	default:
		return ed25519.Sign(s.key.ed, digest), nil
	}
}

// Verify checks sig over the digest held by msghash. Any mismatch, including
// a malformed signature encoding, fails with cask.ErrSignature.
func (v *Verifier) Verify(msghash hash.Hash, sig []byte) error {
	if msghash == nil {
		return cask.Errorf("ecc.Verify", "nil digest object")
	}
	digest, err := msghash.Digest()
	if err != nil {
		return err
	}
	switch v.key.curve {
	case Secp256k1:
		if len(digest) != 32 {
			return cask.Errorf("ecc.Verify", "secp256k1 requires a 32-byte digest, got %d", len(digest))
		}
		parsed, err := btcecdsa.ParseDERSignature(sig)
		if err != nil {
			return cask.ErrSignature
		}
		if !parsed.Verify(digest, v.key.secp) {
			return cask.ErrSignature
		}
		return nil
	default:
		if !ed25519.Verify(v.key.ed, digest, sig) {
			return cask.ErrSignature
		}
		return nil
	}
}
