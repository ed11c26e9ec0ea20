package dictionary_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/weaver/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	words := []string{"cold", "cord", "card", "ward", "warm"}
	d, err := dictionary.New(words)
	require.NoError(t, err)

	words[0] = "xxxx"
	assert.Equal(t, []string{"cold", "cord", "card", "ward", "warm"}, d.Words(), "New must copy its input")
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 4, d.WordLen())

	i, ok := d.Index("card")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = d.Index("wart")
	assert.False(t, ok)
	assert.Equal(t, -1, i)

	w, err := d.Word(4)
	require.NoError(t, err)
	assert.Equal(t, "warm", w)
	assert.True(t, d.Contains("ward"))
	assert.False(t, d.Contains("WARD"), "lookup is exact")
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  error
	}{
		{"length mismatch", []string{"cold", "colder"}, dictionary.ErrWordLength},
		{"uppercase", []string{"cold", "Cord"}, dictionary.ErrInvalidWord},
		{"digits", []string{"c0ld"}, dictionary.ErrInvalidWord},
		{"empty word", []string{""}, dictionary.ErrInvalidWord},
		{"duplicate", []string{"cold", "cord", "cold"}, dictionary.ErrDuplicateWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dictionary.New(tt.words)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	d, err := dictionary.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.WordLen())

	_, err = d.Word(0)
	assert.ErrorIs(t, err, dictionary.ErrIndexOutOfRange)
}

func TestWordAndLookup(t *testing.T) {
	d, err := dictionary.New([]string{"aaaa", "aaab"})
	require.NoError(t, err)

	_, err = d.Word(-1)
	assert.ErrorIs(t, err, dictionary.ErrIndexOutOfRange)
	assert.Panics(t, func() { d.MustWord(2) })
	assert.Equal(t, "aaab", d.MustWord(1))

	got, err := d.Lookup([]int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"aaab", "aaaa", "aaab"}, got)

	_, err = d.Lookup([]int{0, 7})
	assert.ErrorIs(t, err, dictionary.ErrIndexOutOfRange)
}

func TestLoad(t *testing.T) {
	src := "# comment\n\n  Cold \ncord\n# another\nCARD\n"
	d, err := dictionary.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"cold", "cord", "card"}, d.Words())

	_, err = dictionary.Load(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, dictionary.ErrEmpty)

	_, err = dictionary.Load(strings.NewReader("cold\nCOLD\n"))
	assert.ErrorIs(t, err, dictionary.ErrDuplicateWord)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("aaaa\naaab\nbbbb\n"), 0o644))

	d, err := dictionary.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	_, err = dictionary.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	d := dictionary.Default()
	require.NotNil(t, d)
	assert.Same(t, d, dictionary.Default(), "Default is parsed once")
	assert.Equal(t, dictionary.DefaultWordLen, d.WordLen())
	assert.Greater(t, d.Len(), 1000)

	for _, w := range []string{"cold", "cord", "card", "ward", "warm"} {
		assert.True(t, d.Contains(w), "embedded list must contain %q", w)
	}
}
