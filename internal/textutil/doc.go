// Package textutil provides text validation utilities for filesystem names.
//
// The primary use cases are:
//   - Checking file and directory names against the reserved character set
//   - Trimming separator punctuation left behind by substring removal
//
// The reserved set covers the characters no supported filesystem accepts in a
// name (angle brackets, colon, quote, pipe, question mark, asterisk, path
// separators, and control characters). Validation is strict: callers decide
// whether an invalid name is an error or triggers a fallback.
package textutil
