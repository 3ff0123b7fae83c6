package chacha20

import (
	"crypto/cipher"
	"io"

	xchacha20 "golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/logging"
	"github.com/cask-crypto/cask-go/pkg/cask/symmetric"
)

const (
	// KeySize is the ChaCha20 key length.
	KeySize = chacha20poly1305.KeySize
	// NonceSize selects ChaCha20-Poly1305.
	NonceSize = chacha20poly1305.NonceSize
	// NonceSizeX selects XChaCha20-Poly1305.
	NonceSizeX = chacha20poly1305.NonceSizeX
)

type config struct {
	log logging.Logger
}

// Option customizes a constructor.
type Option func(*config)

// WithLogger attaches a logger to file contexts created by NewFile.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = l }
}

// NewAEAD creates a (X)ChaCha20-Poly1305 context. The nonce length picks the
// construction: 12 bytes for ChaCha20-Poly1305, 24 for XChaCha20-Poly1305.
func NewAEAD(dir cask.Direction, key, nonce []byte, _ ...Option) (symmetric.AEAD, error) {
	aead, err := newPoly1305(key, nonce)
	if err != nil {
		return nil, err
	}
	stream, err := xchacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, cask.Errorf("chacha20.NewAEAD", "%w", err)
	}
	// The Poly1305 constructions encrypt the payload starting at block
	// counter 1; block 0 keys the one-time authenticator.
	stream.SetCounter(1)
	return symmetric.NewNativeAEAD(dir, aead, stream, nonce)
}

// NewNonAEAD creates a bare ChaCha20 context with no authentication. The
// nonce may be 12 bytes (ChaCha20) or 24 (XChaCha20).
func NewNonAEAD(dir cask.Direction, key, nonce []byte) (symmetric.NonAEAD, error) {
	stream, err := xchacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, cask.Errorf("chacha20.NewNonAEAD", "%w", err)
	}
	return symmetric.NewStream(dir, stream)
}

// NewFile creates a streaming (X)ChaCha20-Poly1305 context over src. File
// operation always authenticates.
func NewFile(dir cask.Direction, key, nonce []byte, src io.Reader, opts ...Option) (*symmetric.FileCipher, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx, err := NewAEAD(dir, key, nonce)
	if err != nil {
		return nil, err
	}
	var fopts []symmetric.FileOption
	if cfg.log != nil {
		fopts = append(fopts, symmetric.WithLogger(cfg.log))
	}
	return symmetric.NewFile(ctx, src, fopts...)
}

func newPoly1305(key, nonce []byte) (cipher.AEAD, error) {
	switch len(nonce) {
	case NonceSize:
		a, aerr := chacha20poly1305.New(key)
		if aerr != nil {
			return nil, cask.Errorf("chacha20.NewAEAD", "%w", aerr)
		}
		return a, nil
	case NonceSizeX:
		a, aerr := chacha20poly1305.NewX(key)
		if aerr != nil {
			return nil, cask.Errorf("chacha20.NewAEAD", "%w", aerr)
		}
		return a, nil
	default:
		return nil, cask.Errorf("chacha20.NewAEAD", "nonce must be %d or %d bytes, got %d", NonceSize, NonceSizeX, len(nonce))
	}
}
