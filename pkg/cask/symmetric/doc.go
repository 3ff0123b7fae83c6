// Package symmetric implements the unified authenticated-cipher state
// machine of the cask façade.
//
// The package has four pieces. StreamCipher is the bare non-AEAD core.
// HMACCipher composes it with an HMAC to synthesize AEAD semantics:
// Encrypt-then-MAC on the way out, MAC-then-Decrypt on the way back, so the
// authenticator always covers the ciphertext. NativeAEAD adapts primitives
// that authenticate natively to the same contract. FileCipher drives either
// AEAD implementation against a source/sink in caller-buffered chunks.
//
// State machine rules, uniform across implementations: associated data
// before payload, finalize exactly once, tags required to finalize a
// decryption and retrievable only after finalizing an encryption. Violations
// surface as the sentinels in the root cask package.
package symmetric
