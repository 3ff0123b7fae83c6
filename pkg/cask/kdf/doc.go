// Package kdf derives the encryption/authentication subkey pair used by the
// composed-AEAD path. One master key and salt go in; two domain-separated
// HKDF outputs come out. The derivation is the only piece of key handling the
// module performs itself; everything downstream consumes the subkeys through
// the cipher and MAC providers.
package kdf
