package aes

import (
	stdaes "crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
	"github.com/cask-crypto/cask-go/pkg/cask/kdf"
	"github.com/cask-crypto/cask-go/pkg/cask/logging"
	"github.com/cask-crypto/cask-go/pkg/cask/symmetric"
)

// Mode selects the AES mode of operation.
type Mode int

const (
	// GCM is natively authenticated; the façade dispatches it to the
	// native AEAD adapter.
	GCM Mode = iota + 1
	// CTR, OFB and CFB carry no authentication of their own. The AEAD
	// constructor composes them with HMAC; the non-AEAD constructor hands
	// them out bare. CFB is CFB128 (full-block feedback).
	CTR
	OFB
	CFB
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case GCM:
		return "GCM"
	case CTR:
		return "CTR"
	case OFB:
		return "OFB"
	case CFB:
		return "CFB"
	default:
		return "unknown"
	}
}

// IsAEAD reports whether the mode authenticates natively.
func (m Mode) IsAEAD() bool {
	return m == GCM
}

// SupportedModes lists every mode this façade accepts.
func SupportedModes() []Mode {
	return []Mode{GCM, CTR, OFB, CFB}
}

// NonceSize is the nonce length required by GCM contexts.
const NonceSize = 12

type config struct {
	hmacAlgo hash.Algorithm
	tagSize  int
	log      logging.Logger
}

// Option customizes a constructor.
type Option func(*config)

// WithHMACHash selects the hash for subkey derivation and HMAC on the
// composed path. Defaults to SHA-256. Ignored for GCM.
func WithHMACHash(algo hash.Algorithm) Option {
	return func(c *config) { c.hmacAlgo = algo }
}

// WithTagSize truncates the authentication tag to n bytes. On the composed
// path the low-order bytes of the full MAC are kept; for GCM the provider's
// truncated-tag construction is used (12..16 bytes). Default is the full tag.
func WithTagSize(n int) Option {
	return func(c *config) { c.tagSize = n }
}

// WithLogger attaches a logger to file contexts created by NewFile.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = l }
}

// NewAEAD creates an authenticated AES context. GCM forwards to the native
// adapter. For CTR/OFB/CFB the master key is split into independent cipher
// and MAC subkeys (salted by the nonce) and the cipher is wrapped in the
// Encrypt-then-MAC composition, so every mode meets the same AEAD contract.
func NewAEAD(dir cask.Direction, key []byte, mode Mode, ivOrNonce []byte, opts ...Option) (symmetric.AEAD, error) {
	cfg := config{hmacAlgo: hash.SHA256}
	for _, opt := range opts {
		opt(&cfg)
	}

	if mode == GCM {
		return newGCM(dir, key, ivOrNonce, cfg)
	}

	keys, err := kdf.Derive(key, ivOrNonce, cfg.hmacAlgo, len(key))
	if err != nil {
		return nil, err
	}
	stream, err := newStream(dir, keys.EncKey, mode, ivOrNonce)
	if err != nil {
		keys.Destroy()
		return nil, err
	}
	core, err := symmetric.NewStream(dir, stream)
	if err != nil {
		keys.Destroy()
		return nil, err
	}

	hopts := []symmetric.HMACOption{symmetric.WithOwnedKeys(keys)}
	if cfg.tagSize > 0 {
		hopts = append(hopts, symmetric.WithTagSize(cfg.tagSize))
	}
	return symmetric.NewHMAC(core, keys.AuthKey, cfg.hmacAlgo, ivOrNonce, hopts...)
}

// NewNonAEAD creates a bare AES context with no authentication, for callers
// who explicitly do not need integrity. GCM is refused here: it only exists
// behind the AEAD contract.
func NewNonAEAD(dir cask.Direction, key []byte, mode Mode, iv []byte) (symmetric.NonAEAD, error) {
	if mode == GCM {
		return nil, cask.Errorf("aes.NewNonAEAD", "GCM requires the AEAD contract")
	}
	stream, err := newStream(dir, key, mode, iv)
	if err != nil {
		return nil, err
	}
	return symmetric.NewStream(dir, stream)
}

// NewFile creates a streaming AES context over src. File operation always
// authenticates: non-AEAD modes are HMAC-composed exactly as in NewAEAD.
func NewFile(dir cask.Direction, key []byte, mode Mode, ivOrNonce []byte, src io.Reader, opts ...Option) (*symmetric.FileCipher, error) {
	cfg := config{hmacAlgo: hash.SHA256}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx, err := NewAEAD(dir, key, mode, ivOrNonce, opts...)
	if err != nil {
		return nil, err
	}
	var fopts []symmetric.FileOption
	if cfg.log != nil {
		fopts = append(fopts, symmetric.WithLogger(cfg.log))
	}
	return symmetric.NewFile(ctx, src, fopts...)
}

func newGCM(dir cask.Direction, key, nonce []byte, cfg config) (symmetric.AEAD, error) {
	block, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, cask.Errorf("aes.NewAEAD", "%w", err)
	}
	if len(nonce) != NonceSize {
		return nil, cask.Errorf("aes.NewAEAD", "GCM nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	var aead cipher.AEAD
	if cfg.tagSize > 0 {
		aead, err = cipher.NewGCMWithTagSize(block, cfg.tagSize)
	} else {
		aead, err = cipher.NewGCM(block)
	}
	if err != nil {
		return nil, cask.Errorf("aes.NewAEAD", "%w", err)
	}

	// GCM encrypts the payload with CTR starting at inc32(J0), which for a
	// 96-bit nonce is nonce || 0x00000002. Positioning a CTR stream there
	// reproduces the payload keystream for incremental output.
	iv := make([]byte, stdaes.BlockSize)
	copy(iv, nonce)
	iv[stdaes.BlockSize-1] = 2
	stream := cipher.NewCTR(block, iv)

	return symmetric.NewNativeAEAD(dir, aead, stream, nonce)
}

func newStream(dir cask.Direction, key []byte, mode Mode, iv []byte) (cipher.Stream, error) {
	block, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, cask.Errorf("aes.New", "%w", err)
	}
	if len(iv) != stdaes.BlockSize {
		return nil, cask.Errorf("aes.New", "%s IV must be %d bytes, got %d", mode, stdaes.BlockSize, len(iv))
	}
	switch mode {
	case CTR:
		return cipher.NewCTR(block, iv), nil
	case OFB:
		return cipher.NewOFB(block, iv), nil
	case CFB:
		if dir.IsEncrypting() {
			return cipher.NewCFBEncrypter(block, iv), nil
		}
		return cipher.NewCFBDecrypter(block, iv), nil
	default:
		return nil, cask.Errorf("aes.New", "unsupported mode %v", mode)
	}
}
