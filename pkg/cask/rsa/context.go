package rsa

import (
	"crypto"
	"crypto/rand"
	stdrsa "crypto/rsa"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

// Signer binds a private key and a PSS configuration. Created by
// PrivateKey.Signer; stateless after construction.
type Signer struct {
	key  *stdrsa.PrivateKey
	salt int
	mgf  hash.Algorithm
}

// Verifier is the public-key counterpart of Signer.
type Verifier struct {
	key  *stdrsa.PublicKey
	salt int
	mgf  hash.Algorithm
}

// Encryptor binds a public key and an OAEP configuration.
type Encryptor struct {
	key   *stdrsa.PublicKey
	algo  hash.Algorithm
	label []byte
}

// Decryptor is the private-key counterpart of Encryptor.
type Decryptor struct {
	key   *stdrsa.PrivateKey
	algo  hash.Algorithm
	label []byte
}

// Signer creates a signing context using PSS padding. A zero PSS value gives
// MGF1 over the digest hash and a maximized salt.
func (k *PrivateKey) Signer(p PSS) (*Signer, error) {
	salt, err := pssSalt(p)
	if err != nil {
		return nil, err
	}
	return &Signer{key: k.key, salt: salt, mgf: p.MGF.Hash}, nil
}

// Verifier creates a verification context using PSS padding. The PSS value
// must match the one the signature was produced with.
func (k *PublicKey) Verifier(p PSS) (*Verifier, error) {
	salt, err := pssSalt(p)
	if err != nil {
		return nil, err
	}
	return &Verifier{key: k.key, salt: salt, mgf: p.MGF.Hash}, nil
}

// Encryptor creates an encryption context using OAEP padding.
func (k *PublicKey) Encryptor(p OAEP) (*Encryptor, error) {
	algo, label, err := oaepParams(p)
	if err != nil {
		return nil, err
	}
	return &Encryptor{key: k.key, algo: algo, label: label}, nil
}

// Decryptor creates a decryption context using OAEP padding. The OAEP value
// must match the one the ciphertext was produced with.
func (k *PrivateKey) Decryptor(p OAEP) (*Decryptor, error) {
	algo, label, err := oaepParams(p)
	if err != nil {
		return nil, err
	}
	return &Decryptor{key: k.key, algo: algo, label: label}, nil
}

// Sign signs the digest held by msghash. The digest algorithm is taken from
// the hash object itself, which must come from this module's registry so the
// provider identifier is guaranteed to match the bytes being signed.
func (s *Signer) Sign(msghash hash.Hash) ([]byte, error) {
	ch, digest, err := digestFor("rsa.Sign", msghash, s.mgf)
	if err != nil {
		return nil, err
	}
	sig, err := stdrsa.SignPSS(rand.Reader, s.key, ch, digest, &stdrsa.PSSOptions{SaltLength: s.salt, Hash: ch})
	if err != nil {
		return nil, cask.Errorf("rsa.Sign", "%w", err)
	}
	return sig, nil
}

// Verify checks sig over the digest held by msghash. A mismatch fails with
// cask.ErrSignature; callers must treat that as a forgery, not a formatting
// problem.
func (v *Verifier) Verify(msghash hash.Hash, sig []byte) error {
	ch, digest, err := digestFor("rsa.Verify", msghash, v.mgf)
	if err != nil {
		return err
	}
	if err := stdrsa.VerifyPSS(v.key, ch, digest, sig, &stdrsa.PSSOptions{SaltLength: v.salt, Hash: ch}); err != nil {
		return cask.ErrSignature
	}
	return nil
}

// Encrypt encrypts plaintext under OAEP. The plaintext must be shorter than
// the modulus minus the OAEP overhead.
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	ct, err := stdrsa.EncryptOAEP(e.algo.Factory()(), rand.Reader, e.key, plaintext, e.label)
	if err != nil {
		return nil, cask.Errorf("rsa.Encrypt", "%w", err)
	}
	return ct, nil
}

// Decrypt decrypts an OAEP ciphertext. Any failure surfaces as
// cask.ErrDecryption: OAEP deliberately does not distinguish padding
// problems from wrong keys or corrupted input.
func (d *Decryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	pt, err := stdrsa.DecryptOAEP(d.algo.Factory()(), rand.Reader, d.key, ciphertext, d.label)
	if err != nil {
		return nil, cask.ErrDecryption
	}
	return pt, nil
}

func pssSalt(p PSS) (int, error) {
	if p.SaltLength < 0 {
		return 0, cask.Errorf("rsa.PSS", "negative salt length %d", p.SaltLength)
	}
	if p.SaltLength == 0 {
		// Maximize for the key size when signing, auto-detect when
		// verifying. This is the OpenSSL-compatible default.
		return stdrsa.PSSSaltLengthAuto, nil
	}
	return p.SaltLength, nil
}

func oaepParams(p OAEP) (hash.Algorithm, []byte, error) {
	algo := p.Hash
	if !algo.Valid() {
		algo = hash.SHA256
	}
	if p.MGF.Hash.Valid() && p.MGF.Hash.Name() != algo.Name() {
		return hash.Algorithm{}, nil, cask.Errorf("rsa.OAEP", "provider requires MGF1 hash to equal the OAEP hash (%s != %s)", p.MGF.Hash, algo)
	}
	return algo, p.Label, nil
}

// digestFor validates that msghash is a registry hash usable with the
// provider and extracts its digest.
func digestFor(op string, msghash hash.Hash, mgf hash.Algorithm) (crypto.Hash, []byte, error) {
	if msghash == nil {
		return 0, nil, cask.Errorf(op, "nil digest object")
	}
	algo, err := hash.Lookup(msghash.Name())
	if err != nil {
		return 0, nil, cask.Errorf(op, "digest object is not from this provider: %w", err)
	}
	ch, ok := algo.CryptoHash()
	if !ok {
		return 0, nil, cask.Errorf(op, "%s has no provider signature identifier", algo)
	}
	if mgf.Valid() && mgf.Name() != algo.Name() {
		return 0, nil, cask.Errorf(op, "provider requires MGF1 hash to equal the digest hash (%s != %s)", mgf, algo)
	}
	digest, err := msghash.Digest()
	if err != nil {
		return 0, nil, err
	}
	if len(digest) != algo.DigestSize() {
		return 0, nil, cask.Errorf(op, "digest length %d does not match %s", len(digest), algo)
	}
	return ch, digest, nil
}
