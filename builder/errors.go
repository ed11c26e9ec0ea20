// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by editing the sentinel.
//   • Build never panics; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrDictionaryNil indicates Build was called with a nil dictionary.
var ErrDictionaryNil = errors.New("builder: dictionary is nil")

// ErrBadSize indicates an invalid count or word length for RandomWords.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates RandomWords was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the requested word list cannot exist, e.g.
// more unique words than the alphabet allows at that length.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter that must surface as an error
// rather than a panic, such as a malformed alphabet.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a formatted message with the method name.
// Use %w in format to keep the sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
