// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - State:   root word, accepted words and score for one game.
//   - Verdict: outcome of a single submission.
//   - Result:  verdict plus the normalized word and user-facing feedback.
//   - WordSource / Dictionary: collaborators the engine queries.

package game

import "fmt"

// WordSource supplies root words for new games.
type WordSource interface {
	PickRoot() string
}

// Dictionary answers whether word is a real word in locale.
// Implementations must be deterministic for a fixed word list and locale.
type Dictionary interface {
	IsRealWord(word, locale string) bool
}

// State holds one game. Values are never mutated in place by the engine;
// Submit returns a new State that owns its UsedWords slice.
type State struct {
	RootWord  string   `json:"rootWord"`
	UsedWords []string `json:"usedWords"` // most recent first, no duplicates
	Score     int      `json:"score"`     // sum of letter counts of UsedWords
}

// Has reports whether word was already accepted in this game.
func (s State) Has(word string) bool {
	for _, w := range s.UsedWords {
		if w == word {
			return true
		}
	}
	return false
}

// Verdict is the outcome of a submission.
type Verdict string

const (
	Accepted           Verdict = "accepted"
	RejectedEmpty      Verdict = "empty"
	RejectedDuplicate  Verdict = "duplicate"
	RejectedTooShort   Verdict = "too_short"
	RejectedRootWord   Verdict = "root_word"
	RejectedImpossible Verdict = "impossible"
	RejectedNotReal    Verdict = "not_real"
)

// Result reports what happened to one submission. Word is the normalized
// submission (empty for RejectedEmpty).
type Result struct {
	Verdict Verdict `json:"verdict"`
	Word    string  `json:"word,omitempty"`
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool { return r.Verdict == Accepted }

// Title is a short headline for rejection feedback.
func (r Result) Title() string {
	switch r.Verdict {
	case Accepted:
		return "Nice one"
	case RejectedDuplicate:
		return "Word used already"
	case RejectedTooShort:
		return "Word too short"
	case RejectedRootWord:
		return "That's the root word"
	case RejectedImpossible:
		return "Word not possible"
	case RejectedNotReal:
		return "Word not recognized"
	default:
		return ""
	}
}

// Message is the feedback body shown under Title. root is the current root word.
func (r Result) Message(root string) string {
	switch r.Verdict {
	case Accepted:
		return fmt.Sprintf("+%d points", LetterCount(r.Word))
	case RejectedDuplicate:
		return "Be more original"
	case RejectedTooShort:
		return "Words need a few more letters than that"
	case RejectedRootWord:
		return "Find words hiding inside it instead"
	case RejectedImpossible:
		return fmt.Sprintf("You can't spell that word from '%s'", root)
	case RejectedNotReal:
		return "You can't just make up words!"
	default:
		return ""
	}
}
