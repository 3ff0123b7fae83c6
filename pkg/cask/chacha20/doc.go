// Package chacha20 constructs ChaCha20 cipher contexts behind the cask AEAD
// contract. Poly1305 authentication is the default; the bare stream cipher is
// available only through the explicit non-AEAD constructor. A 24-byte nonce
// selects the XChaCha20 variants.
package chacha20
