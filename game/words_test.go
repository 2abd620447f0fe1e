package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordBank_FallsBackToDefaults(t *testing.T) {
	t.Parallel()
	b := NewWordBank(nil)
	assert.Contains(t, defaultWords, b.Generate())
}

func TestWordBank_UsesProvidedWords(t *testing.T) {
	t.Parallel()
	b := NewWordBank([]string{"onlyword"})
	assert.Equal(t, "onlyword", b.Generate())
}

func TestLoadWords(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\n\nbanana\ncherry\n"), 0o644))

	words := LoadWords(path)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)
}

func TestLoadWords_MissingFile(t *testing.T) {
	t.Parallel()
	assert.Nil(t, LoadWords(filepath.Join(t.TempDir(), "nope.txt")))
}
