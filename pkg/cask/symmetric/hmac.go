package symmetric

import (
	"crypto/hmac"
	"encoding/binary"
	stdhash "hash"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
	"github.com/cask-crypto/cask-go/pkg/cask/kdf"
)

// HMACCipher synthesizes AEAD guarantees over a non-AEAD cipher:
// Encrypt-then-MAC when encrypting, MAC-then-Decrypt when decrypting. The
// layer owns the wrapped cipher and the MAC, and the update ordering is
// mandatory: the MAC always authenticates the ciphertext, which is what
// actually travels.
//
// The MAC transcript is nonce || aad || ciphertext || len64(aad) || len64(ct)
// with both lengths little-endian. The transcript layout and the low-order
// truncation rule below are observable wire format and must not change.
type HMACCipher struct {
	dir     cask.Direction
	cipher  NonAEAD
	mac     stdhash.Hash
	tagSize int

	keys *kdf.SubkeyPair

	updated   bool
	finalized bool
	aadLen    uint64
	ctLen     uint64
	tag       []byte
}

var _ AEAD = (*HMACCipher)(nil)

// HMACOption customizes an HMACCipher.
type HMACOption func(*HMACCipher)

// WithTagSize truncates the produced tag to n bytes, taken from the low-order
// (trailing) bytes of the full MAC output. The default is the full digest
// size.
func WithTagSize(n int) HMACOption {
	return func(c *HMACCipher) { c.tagSize = n }
}

// WithOwnedKeys hands the subkey pair that keyed the cipher and MAC to the
// context, which zeroizes it on finalize. The pair must not be used after the
// context is finalized.
func WithOwnedKeys(p *kdf.SubkeyPair) HMACOption {
	return func(c *HMACCipher) { c.keys = p }
}

// NewHMAC wraps a non-AEAD cipher together with an HMAC keyed by authKey. The
// nonce is fed into the MAC first so the tag binds the message to it.
func NewHMAC(c NonAEAD, authKey []byte, algo hash.Algorithm, nonce []byte, opts ...HMACOption) (*HMACCipher, error) {
	if c == nil {
		return nil, cask.Errorf("symmetric.NewHMAC", "nil cipher")
	}
	if !algo.Valid() {
		return nil, cask.Errorf("symmetric.NewHMAC", "invalid hash algorithm")
	}
	if len(authKey) == 0 {
		return nil, cask.Errorf("symmetric.NewHMAC", "empty authentication key")
	}

	h := &HMACCipher{
		dir:     c.Direction(),
		cipher:  c,
		mac:     hmac.New(algo.Factory(), authKey),
		tagSize: algo.DigestSize(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tagSize <= 0 || h.tagSize > algo.DigestSize() {
		return nil, cask.Errorf("symmetric.NewHMAC", "tag size %d out of range (1..%d)", h.tagSize, algo.DigestSize())
	}

	h.mac.Write(nonce)
	return h, nil
}

// Direction returns the fixed direction of the context.
func (c *HMACCipher) Direction() cask.Direction {
	return c.dir
}

// Authenticate feeds associated data into the MAC only. Legal only before
// the first Update/UpdateInto call.
func (c *HMACCipher) Authenticate(data []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}
	if c.updated {
		return cask.ErrAuthAfterUpdate
	}
	c.mac.Write(data)
	c.aadLen += uint64(len(data))
	return nil
}

// Update transforms data, maintaining the direction-dependent ordering:
// ciphertext is MACed after encryption and before decryption.
func (c *HMACCipher) Update(data []byte) ([]byte, error) {
	if c.finalized {
		return nil, cask.ErrAlreadyFinalized
	}
	c.updated = true
	c.ctLen += uint64(len(data))

	if c.dir.IsEncrypting() {
		ct, err := c.cipher.Update(data)
		if err != nil {
			return nil, err
		}
		c.mac.Write(ct)
		return ct, nil
	}
	c.mac.Write(data)
	return c.cipher.Update(data)
}

// UpdateInto transforms data into out. out may alias data; the MAC is fed
// before the buffer is overwritten when decrypting, after when encrypting, so
// in-place operation authenticates the right bytes either way.
func (c *HMACCipher) UpdateInto(data, out []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}
	c.updated = true
	c.ctLen += uint64(len(data))

	if c.dir.IsEncrypting() {
		if err := c.cipher.UpdateInto(data, out); err != nil {
			return err
		}
		c.mac.Write(out[:len(data)])
		return nil
	}
	c.mac.Write(data)
	return c.cipher.UpdateInto(data, out)
}

// Finalize closes the context. When decrypting, the supplied tag is compared
// in constant time against the computed one; a mismatch fails with
// cask.ErrDecryption and the context still becomes terminal.
func (c *HMACCipher) Finalize(tag []byte) error {
	if c.finalized {
		return cask.ErrAlreadyFinalized
	}
	if !c.dir.IsEncrypting() && tag == nil {
		return cask.ErrTagRequired
	}

	var lens [16]byte
	binary.LittleEndian.PutUint64(lens[:8], c.aadLen)
	binary.LittleEndian.PutUint64(lens[8:], c.ctLen)
	c.mac.Write(lens[:])

	if err := c.cipher.Finalize(); err != nil {
		return err
	}
	c.finalized = true
	if c.keys != nil {
		c.keys.Destroy()
		c.keys = nil
	}

	full := c.mac.Sum(nil)
	computed := full[len(full)-c.tagSize:]

	if c.dir.IsEncrypting() {
		c.tag = computed
		return nil
	}
	if !hmac.Equal(computed, tag) {
		return cask.ErrDecryption
	}
	return nil
}

// Tag returns the tag computed by an encrypting context. Decrypting contexts
// return nil: their tag was an input, not a product.
func (c *HMACCipher) Tag() ([]byte, error) {
	if !c.finalized {
		return nil, cask.ErrNotFinalized
	}
	if !c.dir.IsEncrypting() {
		return nil, nil
	}
	return c.tag, nil
}
