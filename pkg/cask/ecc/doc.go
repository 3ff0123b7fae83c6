// Package ecc provides elliptic-curve signing for the cask asymmetric
// adapter: deterministic ECDSA over secp256k1 and Ed25519, with the same
// structural capability split as the rsa package. Signing lives on
// PrivateKey, verification on PublicKey, and a forged or malformed signature
// always surfaces as cask.ErrSignature.
package ecc
