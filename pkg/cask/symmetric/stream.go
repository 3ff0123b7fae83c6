package symmetric

import (
	"crypto/cipher"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// StreamCipher is the non-AEAD cipher core. It wraps a keyed cipher.Stream
// transform (CTR, OFB, CFB, ChaCha20) and adds only lifecycle discipline:
// chunked updates in order, finalize-once, no authentication.
type StreamCipher struct {
	dir    cask.Direction
	stream cipher.Stream
}

var _ NonAEAD = (*StreamCipher)(nil)

// NewStream wraps a keyed stream transform. The StreamCipher takes exclusive
// ownership of the transform; it must not be used elsewhere.
func NewStream(dir cask.Direction, stream cipher.Stream) (*StreamCipher, error) {
	if stream == nil {
		return nil, cask.Errorf("symmetric.NewStream", "nil stream transform")
	}
	return &StreamCipher{dir: dir, stream: stream}, nil
}

// Direction returns the fixed direction of the context.
func (c *StreamCipher) Direction() cask.Direction {
	return c.dir
}

// Update transforms data and returns the result.
func (c *StreamCipher) Update(data []byte) ([]byte, error) {
	if c.stream == nil {
		return nil, cask.ErrAlreadyFinalized
	}
	out := make([]byte, len(data))
	c.stream.XORKeyStream(out, data)
	return out, nil
}

// UpdateInto transforms data into out, which must hold at least len(data)
// bytes. out may alias data.
func (c *StreamCipher) UpdateInto(data, out []byte) error {
	if c.stream == nil {
		return cask.ErrAlreadyFinalized
	}
	if len(out) < len(data) {
		return cask.Errorf("symmetric.UpdateInto", "output buffer too small: %d < %d", len(out), len(data))
	}
	c.stream.XORKeyStream(out[:len(data)], data)
	return nil
}

// Finalize releases the transform. A second call fails with
// cask.ErrAlreadyFinalized.
func (c *StreamCipher) Finalize() error {
	if c.stream == nil {
		return cask.ErrAlreadyFinalized
	}
	c.stream = nil
	return nil
}
