// Package cask exposes a backend-agnostic cryptographic façade. The exported
// types present one stable contract for symmetric ciphers, hashes and
// asymmetric operations while the primitive math is delegated to the
// underlying providers (the standard library and golang.org/x/crypto today).
//
// The root package carries the shared vocabulary: the cipher direction, the
// error taxonomy and memory hygiene helpers. The actual constructions live in
// the subpackages:
//
//   - hash:      finalize-aware hash objects behind a fixed registry
//   - kdf:       domain-separated subkey derivation for composed AEAD
//   - symmetric: the authenticated-cipher state machine (EtM, native AEAD,
//     streaming driver)
//   - aes, chacha20: cipher constructors that dispatch to the right path
//   - rsa, ecc:  capability-separated signing and encryption contexts
//
// Contexts created by this module are mutable, owned-by-one-caller state and
// are not safe for concurrent use without external locking.
package cask
