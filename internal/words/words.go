// internal/words/words.go
//
// Root word source for the game engine.
//
// Responsibilities:
//   - Load the candidate root words from an environment-provided file or the
//     embedded default list.
//   - Pick a uniformly random root word, falling back to a constant when the
//     list is empty or could not be read.
//
// Initialization behavior (Load):
//   1. If a path is configured (WORDS_START_FILE), read it. A read failure is
//      logged and the list is treated as unavailable.
//   2. Otherwise use the embedded assets/start.txt.
//   3. If the resulting list is empty, PickRoot returns the fallback word.
//      Only an empty list combined with an empty fallback is fatal (ErrNoWords).

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/assets"
)

// DefaultFallback is the root word used when no list is available.
const DefaultFallback = "silkworm"

// ErrNoWords is returned when neither a word list nor a fallback word exists.
var ErrNoWords = errors.New("words: no root words and no fallback")

// Source supplies random root words. It is read-only after construction and
// safe for concurrent use.
type Source struct {
	words    []string
	fallback string
}

// New builds a Source from list. Entries are trimmed and lowercased; blank
// entries are dropped.
func New(list []string, fallback string) (*Source, error) {
	words := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			words = append(words, w)
		}
	}
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	if len(words) == 0 && fallback == "" {
		return nil, ErrNoWords
	}
	return &Source{words: words, fallback: fallback}, nil
}

// Load reads the list at path, or the embedded default when path is empty.
func Load(path, fallback string, logger zerolog.Logger) (*Source, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = readWordFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("root word list unavailable, using fallback")
			list = nil
		}
	} else {
		list, err = assets.StartList()
		if err != nil {
			logger.Warn().Err(err).Msg("embedded root word list unavailable, using fallback")
			list = nil
		}
	}

	src, err := New(list, fallback)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("words", src.Len()).Str("fallback", src.fallback).Msg("root words loaded")
	return src, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// PickRoot returns a cryptographically random word from the list, or the
// fallback if the list is empty.
func (s *Source) PickRoot() string {
	if len(s.words) == 0 {
		return s.fallback
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.words))))
	if err != nil {
		return s.words[0]
	}
	return s.words[n.Int64()]
}

// Len reports how many root words were loaded.
func (s *Source) Len() int { return len(s.words) }
