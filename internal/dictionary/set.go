// internal/dictionary/set.go
//
// In-memory dictionary keyed by (locale, word).
// Loaded from a newline-delimited word list (DICTIONARY_FILE) or the embedded
// assets/dictionary.txt. Concurrency-safe via RWMutex.

package dictionary

import (
	"fmt"
	"os"
	"sync"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/normalize"
)

// Set is an in-memory spell checker.
type Set struct {
	mu    sync.RWMutex
	words map[string]map[string]struct{} // locale -> words
}

// NewSet constructs an empty Set.
func NewSet() *Set {
	return &Set{words: make(map[string]map[string]struct{})}
}

// LoadSet reads the word list at path (or the embedded default when path is
// empty) and registers it under locale.
func LoadSet(path, locale string) (*Set, error) {
	list, err := ReadList(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	s := NewSet()
	s.Add(locale, list...)
	return s, nil
}

// ReadList returns the newline-delimited word list at path, or the embedded
// English list when path is empty.
func ReadList(path string) ([]string, error) {
	if path == "" {
		return assets.DictionaryList()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Add registers words for locale. Blank entries are ignored.
func (s *Set) Add(locale string, words ...string) {
	key := normalize.Locale(locale)
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.words[key]
	if !ok {
		set = make(map[string]struct{}, len(words))
		s.words[key] = set
	}
	for _, w := range words {
		if w = normalize.Word(w, locale); w != "" {
			set[w] = struct{}{}
		}
	}
}

// IsRealWord reports whether word is registered for locale.
func (s *Set) IsRealWord(word, locale string) bool {
	w := normalize.Word(word, locale)
	if w == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[normalize.Locale(locale)][w]
	return ok
}

// Len returns the number of words registered for locale.
func (s *Set) Len(locale string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[normalize.Locale(locale)])
}
