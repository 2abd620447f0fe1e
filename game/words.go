package game

import (
	"bufio"
	"math/rand"
	"os"

	"github.com/EbukaAmadiObi/drawn-together/shared/logger"
)

// RandomWordGenerator supplies the secret word for a turn.
type RandomWordGenerator interface {
	Generate() string
}

var defaultWords = []string{
	"apple", "banana", "car", "dog", "elephant", "fish",
	"guitar", "house", "igloo", "jacket", "kite", "lamp",
	"mountain", "notebook", "orange", "pizza", "queen",
	"rainbow", "snake", "tree", "umbrella", "volcano",
	"watermelon", "xylophone", "yacht", "zebra", "airplane",
	"beach", "castle", "dinosaur", "earth", "fire", "giraffe",
}

type wordBank struct {
	words []string
}

// NewWordBank builds a uniform word source. An empty slice falls back to the
// built-in vocabulary.
func NewWordBank(words []string) *wordBank {
	if len(words) == 0 {
		words = defaultWords
	}
	return &wordBank{words: words}
}

func (b *wordBank) Generate() string {
	return b.words[rand.Intn(len(b.words))]
}

// LoadWords reads a vocabulary file, one word per line. A missing or empty
// file is not fatal; callers fall back to the default bank.
func LoadWords(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		logger.Infof("No words file at %s, using built-in vocabulary", path)
		return nil
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warningf("Error reading words file %s: %v", path, err)
		return nil
	}

	logger.Infof("Words count: %v", len(words))
	return words
}
