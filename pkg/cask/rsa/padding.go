package rsa

import (
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

// MGF1 is the mask generation function parameter record. The zero value
// means "same hash as the enclosing scheme", which is also the only
// combination the provider supports; naming a different hash is rejected at
// context construction rather than deep inside a primitive call.
type MGF1 struct {
	Hash hash.Algorithm
}

// OAEP holds the parameters for PKCS#1 OAEP encryption. It is a pure value
// record: the adapter turns it into provider arguments at context creation
// and discards it.
type OAEP struct {
	// Hash is the OAEP digest. Defaults to SHA-256.
	Hash hash.Algorithm
	// MGF is the mask generation function. Defaults to MGF1 over Hash.
	MGF MGF1
	// Label is the optional OAEP label. Defaults to empty.
	Label []byte
}

// PSS holds the parameters for the probabilistic signature scheme. The
// digest algorithm is not part of the record; it is taken from the hash
// object presented at Sign/Verify time.
type PSS struct {
	// MGF is the mask generation function. Defaults to MGF1 over the
	// digest hash.
	MGF MGF1
	// SaltLength is the salt length in bytes. Zero means "maximize for the
	// key size", matching OpenSSL and therefore the ciphertext/signature
	// corpus produced by other stacks. Changing this default breaks
	// interop.
	SaltLength int
}
