package symmetric

import (
	"crypto/cipher"

	"github.com/cask-crypto/cask-go/pkg/cask"
)

// NativeAEAD adapts a primitive with native associated-data authentication
// (GCM, ChaCha20-Poly1305) to the AEAD contract. The adapter is pure contract
// normalization: it enforces the same authenticate-before-update and
// tag-on-decrypt rules as HMACCipher even though the primitives themselves
// are looser, so a caller can swap paths without observing a difference.
//
// Go's AEAD providers are one-shot. The adapter still produces payload bytes
// incrementally by running the mode's keystream from its payload position,
// and retains the input transcript so the terminal Seal/Open can compute or
// verify the tag at finalize. The keystream must be positioned by the
// constructor to match the primitive's payload encryption exactly; the cipher
// façades (pkg/cask/aes, pkg/cask/chacha20) do that wiring.
//
// Retaining the transcript means the adapter holds every input byte until
// Finalize: its memory footprint grows with the total payload. The composed
// path (HMACCipher) digests as it goes and has no such retention; prefer a
// composed mode when streaming sources of unbounded size.
type NativeAEAD struct {
	dir    cask.Direction
	aead   cipher.AEAD
	stream cipher.Stream
	nonce  []byte

	aad        []byte
	transcript []byte

	updated   bool
	finalized bool
	tag       []byte
}

var _ AEAD = (*NativeAEAD)(nil)

// NewNativeAEAD builds the adapter from a one-shot AEAD primitive and a
// stream transform positioned at the primitive's payload keystream.
func NewNativeAEAD(dir cask.Direction, aead cipher.AEAD, stream cipher.Stream, nonce []byte) (*NativeAEAD, error) {
	if aead == nil || stream == nil {
		return nil, cask.Errorf("symmetric.NewNativeAEAD", "nil primitive")
	}
	if len(nonce) != aead.NonceSize() {
		return nil, cask.Errorf("symmetric.NewNativeAEAD", "nonce must be %d bytes, got %d", aead.NonceSize(), len(nonce))
	}
	n := make([]byte, len(nonce))
	copy(n, nonce)
	return &NativeAEAD{dir: dir, aead: aead, stream: stream, nonce: n}, nil
}

// Direction returns the fixed direction of the context.
func (c *NativeAEAD) Direction() cask.Direction {
	return c.dir
}

// Authenticate declares associated data. Legal only before the first
// Update/UpdateInto call, matching the composed path even where the
// underlying primitive would tolerate later calls.
func (c *NativeAEAD) Authenticate(data []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}
	if c.updated {
		return cask.ErrAuthAfterUpdate
	}
	c.aad = append(c.aad, data...)
	return nil
}

// Update transforms data and returns the result.
func (c *NativeAEAD) Update(data []byte) ([]byte, error) {
	if c.finalized {
		return nil, cask.ErrAlreadyFinalized
	}
	c.updated = true
	c.transcript = append(c.transcript, data...)
	out := make([]byte, len(data))
	c.stream.XORKeyStream(out, data)
	return out, nil
}

// UpdateInto transforms data into out, which must hold at least len(data)
// bytes. out may alias data: the transcript copy is taken before the buffer
// is overwritten.
func (c *NativeAEAD) UpdateInto(data, out []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}
	if len(out) < len(data) {
		return cask.Errorf("symmetric.UpdateInto", "output buffer too small: %d < %d", len(out), len(data))
	}
	c.updated = true
	c.transcript = append(c.transcript, data...)
	c.stream.XORKeyStream(out[:len(data)], data)
	return nil
}

// Finalize closes the context. Encrypting contexts compute the tag;
// decrypting contexts verify the supplied one and fail with
// cask.ErrDecryption on mismatch.
func (c *NativeAEAD) Finalize(tag []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}

	if c.dir.IsEncrypting() {
		c.finalized = true
		sealed := c.aead.Seal(nil, c.nonce, c.transcript, c.aad)
		c.tag = sealed[len(sealed)-c.aead.Overhead():]
		c.release()
		return nil
	}

	if tag == nil {
		return cask.ErrTagRequired
	}
	c.finalized = true
	ct := make([]byte, 0, len(c.transcript)+len(tag))
	ct = append(ct, c.transcript...)
	ct = append(ct, tag...)
	_, err := c.aead.Open(nil, c.nonce, ct, c.aad)
	c.release()
	if err != nil {
		return cask.ErrDecryption
	}
	return nil
}

func (c *NativeAEAD) release() {
	c.transcript = nil
	c.stream = nil
	c.aead = nil
}

// Tag returns the tag computed by an encrypting context, nil for a
// decrypting one.
func (c *NativeAEAD) Tag() ([]byte, error) {
	if !c.finalized {
		return nil, cask.ErrNotFinalized
	}
	if !c.dir.IsEncrypting() {
		return nil, nil
	}
	return c.tag, nil
}
