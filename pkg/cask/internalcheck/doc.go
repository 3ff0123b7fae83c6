// Package internalcheck provides internal validation and testing utilities.
//
// This package holds static policy checks run as part of the test suite: the
// constant-time comparison policy and the secret formatting policy. It is not
// intended for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the cask library. Use the public API
// provided by pkg/cask and its subpackages instead.
package internalcheck
