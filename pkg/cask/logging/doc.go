// Package logging provides the minimal structured-logging surface used by the
// cask module. It is a thin adapter over log/slog so that hosts keep full
// control of handlers and levels, with a Redacted helper for attributes whose
// values are deliberately withheld.
package logging
