package cask

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325. It cannot guarantee
// complete sanitization (the garbage collector and the providers may hold
// copies) but it is the current ecosystem practice for subkeys and serialized
// private key material, and the module applies it to every SubkeyPair and DER
// buffer it owns.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
