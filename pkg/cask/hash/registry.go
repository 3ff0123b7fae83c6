package hash

import (
	"crypto"
	"crypto/sha256"
	"crypto/sha512"
	stdhash "hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// Algorithm identifies a registered hash function. The zero value is invalid;
// obtain instances from the exported variables or Lookup.
type Algorithm struct {
	name       string
	digestSize int
	blockSize  int
	ch         crypto.Hash
	factory    func() stdhash.Hash
}

// Name returns the registry name, e.g. "sha3_256".
func (a Algorithm) Name() string { return a.name }

// DigestSize returns the digest size in bytes.
func (a Algorithm) DigestSize() int { return a.digestSize }

// BlockSize returns the HMAC block size in bytes, or 0 if not defined.
func (a Algorithm) BlockSize() int { return a.blockSize }

// Valid reports whether a names a registered algorithm.
func (a Algorithm) Valid() bool { return a.factory != nil }

// New creates a fresh finalize-aware Hash for the algorithm.
func (a Algorithm) New() Hash {
	return &state{algo: a, h: a.factory()}
}

// Factory returns a constructor for the provider-native hash state. It exists
// for composition with crypto/hmac and HKDF, which consume func() hash.Hash.
func (a Algorithm) Factory() func() stdhash.Hash {
	return a.factory
}

func (a Algorithm) String() string { return a.name }

// Registered algorithms. The set is fixed at process start; there is no way
// to mutate the registry afterwards.
var (
	SHA224     = Algorithm{"sha224", 28, 64, crypto.SHA224, sha256.New224}
	SHA256     = Algorithm{"sha256", 32, 64, crypto.SHA256, sha256.New}
	SHA384     = Algorithm{"sha384", 48, 128, crypto.SHA384, sha512.New384}
	SHA512     = Algorithm{"sha512", 64, 128, crypto.SHA512, sha512.New}
	SHA512_224 = Algorithm{"sha512_224", 28, 128, crypto.SHA512_224, sha512.New512_224}
	SHA512_256 = Algorithm{"sha512_256", 32, 128, crypto.SHA512_256, sha512.New512_256}
	SHA3_224   = Algorithm{"sha3_224", 28, 144, crypto.SHA3_224, sha3.New224}
	SHA3_256   = Algorithm{"sha3_256", 32, 136, crypto.SHA3_256, sha3.New256}
	SHA3_384   = Algorithm{"sha3_384", 48, 104, crypto.SHA3_384, sha3.New384}
	SHA3_512   = Algorithm{"sha3_512", 64, 72, crypto.SHA3_512, sha3.New512}
	BLAKE2b256 = Algorithm{"blake2b_256", 32, 128, crypto.BLAKE2b_256, mustKeyed(blake2b.New256)}
	BLAKE2b384 = Algorithm{"blake2b_384", 48, 128, crypto.BLAKE2b_384, mustKeyed(blake2b.New384)}
	BLAKE2b512 = Algorithm{"blake2b_512", 64, 128, crypto.BLAKE2b_512, mustKeyed(blake2b.New512)}
	BLAKE2s256 = Algorithm{"blake2s_256", 32, 64, crypto.BLAKE2s_256, mustKeyed(blake2s.New256)}
)

var registry = map[string]Algorithm{}

func init() {
	for _, a := range []Algorithm{
		SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		BLAKE2b256, BLAKE2b384, BLAKE2b512, BLAKE2s256,
	} {
		registry[a.name] = a
	}
}

// Lookup resolves a registry name to its Algorithm.
func Lookup(name string) (Algorithm, error) {
	a, ok := registry[name]
	if !ok {
		return Algorithm{}, cask.Errorf("hash.Lookup", "unknown algorithm %q", name)
	}
	return a, nil
}

// Algorithms returns the sorted names of all registered algorithms.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mustKeyed adapts the blake2 constructors, which only fail when a key longer
// than the block size is supplied. We never pass a key.
func mustKeyed(f func(key []byte) (stdhash.Hash, error)) func() stdhash.Hash {
	return func() stdhash.Hash {
		h, err := f(nil)
		if err != nil {
			panic("hash: keyless blake2 constructor failed: " + err.Error())
		}
		return h
	}
}
