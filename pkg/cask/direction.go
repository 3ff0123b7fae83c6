package cask

// Direction fixes whether a cipher context encrypts or decrypts. It is set at
// construction and never changes for the lifetime of the context; the
// composed-AEAD layer uses it to pick the mandatory update ordering
// (Encrypt-then-MAC vs MAC-then-Decrypt).
type Direction int

const (
	// Encrypt marks a context that turns plaintext into ciphertext.
	Encrypt Direction = iota
	// Decrypt marks a context that turns ciphertext back into plaintext.
	Decrypt
)

// IsEncrypting reports whether d is the encrypting direction.
func (d Direction) IsEncrypting() bool {
	return d == Encrypt
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}
