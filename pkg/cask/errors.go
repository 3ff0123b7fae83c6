package cask

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every cipher and signing context in the module.
// Callers are expected to test them with errors.Is. None of them is ever
// retried internally, and none of them carries key, plaintext or tag material.
var (
	// ErrAlreadyFinalized indicates an operation on a context past its
	// terminal state. Always a caller-logic error.
	ErrAlreadyFinalized = errors.New("cask: context already finalized")

	// ErrNotFinalized indicates a tag or result was requested before the
	// context was finalized.
	ErrNotFinalized = errors.New("cask: context not finalized")

	// ErrDecryption indicates an integrity or authentication check failed:
	// the ciphertext or tag was corrupted or forged. It is deliberately
	// distinct from argument-validation errors so callers cannot mistake a
	// forgery for a formatting problem.
	ErrDecryption = errors.New("cask: decryption failed")

	// ErrSignature indicates signature verification failed. Same must-surface,
	// never-retry policy as ErrDecryption.
	ErrSignature = errors.New("cask: signature verification failed")

	// ErrDerivation indicates a requested subkey length exceeds the safety
	// bound of the derivation construction.
	ErrDerivation = errors.New("cask: derivation bound exceeded")

	// ErrAuthAfterUpdate indicates Authenticate was called after payload
	// processing began. Associated data must be declared first.
	ErrAuthAfterUpdate = errors.New("cask: authenticate called after update")

	// ErrTagRequired indicates Finalize was called on a decrypting context
	// without the authentication tag.
	ErrTagRequired = errors.New("cask: tag required for decryption")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // operation that failed, e.g. "aes.NewAEAD"
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cask.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error for op from a format string.
func Errorf(op string, format string, args ...any) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}
