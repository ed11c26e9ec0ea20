package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DefaultWordLen is the word length of the embedded list.
const DefaultWordLen = 4

//go:embed words.txt
var embeddedWords []byte

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the embedded four-letter dictionary. It is parsed once and
// shared. A malformed embedded list is a build defect, so Default panics.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Load(bytes.NewReader(embeddedWords))
		if err != nil {
			panic(fmt.Sprintf("dictionary: embedded word list: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// Parse reads one word per line, skipping blanks and '#' comments. Words are
// trimmed and lowercased; validation is left to New.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// Load parses r and builds a Dictionary. An empty source is ErrEmpty.
func Load(r io.Reader) (*Dictionary, error) {
	words, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return New(words)
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
