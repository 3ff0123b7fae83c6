// Package hash provides the hash-object boundary of the cask façade.
//
// Every digest consumed elsewhere in the module (HMAC composition, subkey
// derivation, signature contexts) flows through the Algorithm registry here,
// so the mapping from an algorithm name to a provider-native state is decided
// in exactly one place. The registry is populated at process start and
// read-only afterwards.
//
// SHA-2 states come from the standard library; SHA-3 and BLAKE2 come from
// golang.org/x/crypto.
package hash
