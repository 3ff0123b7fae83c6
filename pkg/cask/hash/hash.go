package hash

import (
	"crypto"
	"encoding"
	stdhash "hash"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// Hash is a finalize-aware hash object. Digest is non-destructive and may be
// called repeatedly, but once it has been called the object is sealed: Update
// and Copy report cask.ErrAlreadyFinalized. This mirrors the lifecycle of the
// cipher contexts in pkg/cask/symmetric so misuse surfaces the same way
// everywhere.
type Hash interface {
	// Name returns the registry name of the algorithm, e.g. "sha256".
	Name() string

	// DigestSize returns the size of the produced digest in bytes.
	DigestSize() int

	// BlockSize returns the internal block size in bytes, used by HMAC to
	// pad or pre-hash the key. It is 0 for algorithms with no defined HMAC
	// block size.
	BlockSize() int

	// Update hashes data into the current state.
	Update(data []byte) error

	// Digest returns the digest of everything written so far. The state is
	// not altered; further Digest calls return the same value.
	Digest() ([]byte, error)

	// Copy returns an independent copy of the hash state.
	Copy() (Hash, error)
}

type state struct {
	algo      Algorithm
	h         stdhash.Hash
	finalized bool
}

func (s *state) Name() string    { return s.algo.name }
func (s *state) DigestSize() int { return s.algo.digestSize }
func (s *state) BlockSize() int  { return s.algo.blockSize }

func (s *state) Update(data []byte) error {
	if s.finalized {
		return cask.ErrAlreadyFinalized
	}
	// stdlib hash.Hash.Write never returns an error
	s.h.Write(data)
	return nil
}

func (s *state) Digest() ([]byte, error) {
	s.finalized = true
	return s.h.Sum(nil), nil
}

func (s *state) Copy() (Hash, error) {
	if s.finalized {
		return nil, cask.ErrAlreadyFinalized
	}
	m, ok := s.h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, cask.Errorf("hash.Copy", "%s state is not clonable", s.algo.name)
	}
	snap, err := m.MarshalBinary()
	if err != nil {
		return nil, cask.Errorf("hash.Copy", "snapshot %s state: %w", s.algo.name, err)
	}
	fresh := s.algo.factory()
	u, ok := fresh.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, cask.Errorf("hash.Copy", "%s state is not clonable", s.algo.name)
	}
	if err := u.UnmarshalBinary(snap); err != nil {
		return nil, cask.Errorf("hash.Copy", "restore %s state: %w", s.algo.name, err)
	}
	return &state{algo: s.algo, h: fresh}, nil
}

// New creates a Hash for the named algorithm.
func New(name string) (Hash, error) {
	algo, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return algo.New(), nil
}

// CryptoHash returns the crypto.Hash identifier for the algorithm, when the
// standard library defines one. Asymmetric contexts use it to hand the
// provider a digest identifier that is guaranteed to match the hash object
// the digest came from.
func (a Algorithm) CryptoHash() (crypto.Hash, bool) {
	return a.ch, a.ch != 0
}
