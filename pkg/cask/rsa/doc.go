// Package rsa provides the RSA half of the cask asymmetric adapter: key
// generation, PSS signing/verification and OAEP encryption/decryption
// contexts, and the PKCS#8/PKIX serialization boundary.
//
// Capability separation is structural. A context built from a public key has
// no Sign or Decrypt method to call, so the capability-mismatch class of
// errors cannot occur at runtime. Padding records (OAEP, PSS, MGF1) are plain
// values consumed at context creation.
package rsa
