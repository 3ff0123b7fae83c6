// Package aes constructs AES cipher contexts behind the cask AEAD contract.
//
// The dispatch rule is fixed: modes with native authentication (GCM) go to
// the native adapter; everything else is composed with HMAC over subkeys
// derived from the master key, unless the caller explicitly asks for the bare
// non-AEAD core. File contexts always authenticate.
package aes
