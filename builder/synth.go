// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// synth.go - seeded synthetic word lists.
//
// Small alphabets and short lengths give dense, well-connected graphs, which
// is what property tests and benchmarks want; the embedded dictionary is too
// large to cross-check against an all-pairs oracle.
//
// Determinism: the same rng state, n, length and alphabet give the same list.

package builder

import "math"

const methodRandomWords = "RandomWords"

// RandomWords returns n distinct words of the given length drawn uniformly
// from alphabet, in draw order. Requires WithSeed or WithRand.
//
// Errors:
//   - ErrBadSize:         n < 0 or length < 1.
//   - ErrOptionViolation: alphabet empty, not a-z, or with repeated letters.
//   - ErrConstructFailed: n > len(alphabet)^length.
//   - ErrNeedRandSource:  no RNG configured.
func RandomWords(n, length int, alphabet string, opts ...BuilderOption) ([]string, error) {
	if n < 0 || length < 1 {
		return nil, builderErrorf(methodRandomWords, "n=%d length=%d: %w", n, length, ErrBadSize)
	}
	if !validAlphabet(alphabet) {
		return nil, builderErrorf(methodRandomWords, "alphabet %q: %w", alphabet, ErrOptionViolation)
	}
	if space := math.Pow(float64(len(alphabet)), float64(length)); float64(n) > space {
		return nil, builderErrorf(methodRandomWords, "%d words exceed %.0f possible: %w", n, space, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomWords, "%w", ErrNeedRandSource)
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	buf := make([]byte, length)
	for len(out) < n {
		for k := range buf {
			buf[k] = alphabet[cfg.rng.Intn(len(alphabet))]
		}
		w := string(buf)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

// validAlphabet reports whether s is a non-empty set of distinct a-z letters.
func validAlphabet(s string) bool {
	if s == "" {
		return false
	}
	var seen [26]bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' || seen[c-'a'] {
			return false
		}
		seen[c-'a'] = true
	}
	return true
}
