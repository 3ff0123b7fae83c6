package kdf

import (
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

// Context labels separating the two derivations. Changing either breaks
// interop with existing ciphertexts; they are part of the wire format.
const (
	encContext  = "enc-key"
	authContext = "auth-key"
)

// SubkeyPair holds the two independent subkeys derived from one master key
// for a composed AEAD context: one for the cipher, one for the MAC. The pair
// lives exactly as long as the owning cipher context; call Destroy when the
// context is done with it.
type SubkeyPair struct {
	// EncKey keys the payload cipher.
	EncKey []byte
	// AuthKey keys the MAC. Its length is always the digest size of the
	// hash the pair was derived with.
	AuthKey []byte
}

// Destroy zeroizes both subkeys. The pair must not be used afterwards.
func (p *SubkeyPair) Destroy() {
	cask.ZeroizeBytes(p.EncKey)
	cask.ZeroizeBytes(p.AuthKey)
	p.EncKey, p.AuthKey = nil, nil
}

// Derive produces a SubkeyPair from master and salt using two HKDF
// invocations distinguished only by context label. The labels guarantee the
// subkeys are cryptographically independent even though they share a master
// key, so keying the cipher never weakens the MAC or vice versa.
//
// encKeyLen is the cipher's required key length. The MAC subkey length is the
// digest size of algo. Requests beyond the HKDF-Expand bound of
// 255 × digest size fail with cask.ErrDerivation.
func Derive(master, salt []byte, algo hash.Algorithm, encKeyLen int) (*SubkeyPair, error) {
	if !algo.Valid() {
		return nil, cask.Errorf("kdf.Derive", "invalid hash algorithm")
	}
	if encKeyLen <= 0 {
		return nil, cask.Errorf("kdf.Derive", "encryption key length must be positive, got %d", encKeyLen)
	}
	if encKeyLen > 255*algo.DigestSize() {
		return nil, cask.Errorf("kdf.Derive", "%d bytes with %s: %w", encKeyLen, algo.Name(), cask.ErrDerivation)
	}

	encKey, err := expand(master, salt, algo, encContext, encKeyLen)
	if err != nil {
		return nil, err
	}
	authKey, err := expand(master, salt, algo, authContext, algo.DigestSize())
	if err != nil {
		cask.ZeroizeBytes(encKey)
		return nil, err
	}
	return &SubkeyPair{EncKey: encKey, AuthKey: authKey}, nil
}

func expand(master, salt []byte, algo hash.Algorithm, context string, length int) ([]byte, error) {
	r := hkdf.New(algo.Factory(), master, salt, []byte(context))
	key := make([]byte, length)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, cask.Errorf("kdf.Derive", "%s expansion: %w", context, err)
	}
	return key, nil
}
