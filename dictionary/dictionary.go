// Package dictionary holds the fixed, ordered word list the solver runs over.
//
// A Dictionary is immutable: words keep the index they were given at
// construction for the life of the process, and the graph and search layers
// refer to words only by that index. Text is used at the boundary, through
// Index and Word.
//
// Invariants enforced by New:
//   - every word has the same length (WordLen);
//   - every word is made of lowercase ASCII letters;
//   - no word appears twice.
//
// The zero-word dictionary is valid and yields an empty graph.
package dictionary

import (
	"errors"
	"fmt"
)

// Sentinel errors for dictionary construction and lookup.
var (
	// ErrEmpty is returned when a word-list source contains no words.
	ErrEmpty = errors.New("dictionary: word list is empty")

	// ErrWordLength is returned when a word's length differs from the first word's.
	ErrWordLength = errors.New("dictionary: word length mismatch")

	// ErrInvalidWord is returned for words containing anything but a-z.
	ErrInvalidWord = errors.New("dictionary: invalid word")

	// ErrDuplicateWord is returned when a word appears more than once.
	ErrDuplicateWord = errors.New("dictionary: duplicate word")

	// ErrIndexOutOfRange is returned by Word for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dictionary: index out of range")
)

// Dictionary is an ordered set of equal-length words with a text→index
// lookup table. Safe for concurrent readers.
type Dictionary struct {
	words   []string
	index   map[string]int
	wordLen int
}

// New validates words and returns a Dictionary preserving their order.
// The slice is copied; later changes by the caller have no effect.
//
// Errors: ErrWordLength, ErrInvalidWord, ErrDuplicateWord, each wrapped with
// the offending position and word.
//
// Complexity: O(N·L).
func New(words []string) (*Dictionary, error) {
	d := &Dictionary{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	copy(d.words, words)

	for i, w := range d.words {
		if i == 0 {
			d.wordLen = len(w)
		}
		if len(w) != d.wordLen {
			return nil, fmt.Errorf("word %d %q has length %d, want %d: %w", i, w, len(w), d.wordLen, ErrWordLength)
		}
		if !isLowerAlpha(w) {
			return nil, fmt.Errorf("word %d %q: %w", i, w, ErrInvalidWord)
		}
		if prev, dup := d.index[w]; dup {
			return nil, fmt.Errorf("word %d %q already at %d: %w", i, w, prev, ErrDuplicateWord)
		}
		d.index[w] = i
	}

	return d, nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLen returns the common word length, or 0 for an empty dictionary.
func (d *Dictionary) WordLen() int { return d.wordLen }

// Index returns the position of word, or (-1, false) when absent.
// The lookup is exact; callers normalise case first.
func (d *Dictionary) Index(word string) (int, bool) {
	i, ok := d.index[word]
	if !ok {
		return -1, false
	}
	return i, true
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

// Word returns the word at index i.
func (d *Dictionary) Word(i int) (string, error) {
	if i < 0 || i >= len(d.words) {
		return "", fmt.Errorf("Word(%d) with %d words: %w", i, len(d.words), ErrIndexOutOfRange)
	}
	return d.words[i], nil
}

// MustWord is Word for indices already known to be valid, such as those
// produced by a search over this dictionary's graph. It panics otherwise.
func (d *Dictionary) MustWord(i int) string {
	w, err := d.Word(i)
	if err != nil {
		panic(err)
	}
	return w
}

// Words returns a copy of the ordered word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Lookup maps a sequence of indices to their words.
func (d *Dictionary) Lookup(indices []int) ([]string, error) {
	out := make([]string, len(indices))
	for k, i := range indices {
		w, err := d.Word(i)
		if err != nil {
			return nil, err
		}
		out[k] = w
	}
	return out, nil
}

// isLowerAlpha reports whether s is non-empty and made only of a-z.
func isLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
