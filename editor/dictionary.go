package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/piecetable"
)

// DefaultDictionaryPath is the word list found on most Unix systems.
const DefaultDictionaryPath = "/usr/share/dict/words"

// Dictionary is a set of correctly spelled words.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary creates a dictionary containing words.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// LoadDictionary reads a word list, one word per line. Blank lines are
// skipped.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	piecetable.T().Debugf("dictionary with %d words loaded", d.Len())
	return d, nil
}

// LoadDictionaryFile reads a word list from file path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDictionary(f)
}

// Add puts a word into the dictionary.
func (d *Dictionary) Add(word string) {
	if word = strings.TrimSpace(word); word != "" {
		d.words[word] = struct{}{}
	}
}

// Contains reports whether word is spelled correctly. A capitalized word
// matches its lower-case entry. A nil dictionary contains nothing.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	if _, ok := d.words[word]; ok {
		return true
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}
