// internal/game/engine.go
//
// Validation engine for a single word scramble game.
// Responsibilities:
//   - Create new games from a WordSource.
//   - Validate submissions (empty, duplicate, spellable, playable, real).
//   - Return the updated State; rejected submissions leave it untouched.
//
// Submission pipeline (first failing check wins):
//   1. normalize: trim + locale-aware lowercase; empty -> RejectedEmpty
//   2. originality: already used -> RejectedDuplicate
//   3. possibility: letters drawn from the root word multiset -> RejectedImpossible
//   4. playability: shorter than minLength -> RejectedTooShort,
//      equal to the root word -> RejectedRootWord
//   5. reality: dictionary lookup -> RejectedNotReal
//
// The engine holds no game state of its own and is safe for concurrent use;
// callers serialize submissions per State.
package game

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/normalize"
)

const (
	DefaultLocale    = "en"
	DefaultMinLength = 3
)

// Engine validates submissions against a State.
type Engine struct {
	words     WordSource
	dict      Dictionary
	locale    string
	minLength int
	allowRoot bool
	log       zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the locale used for lowercasing and dictionary lookups.
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// WithMinLength sets the minimum accepted word length in letters.
// Values below 1 disable the check.
func WithMinLength(n int) Option {
	return func(e *Engine) { e.minLength = n }
}

// WithRootWord controls whether submitting the root word itself is allowed.
func WithRootWord(allowed bool) Option {
	return func(e *Engine) { e.allowRoot = allowed }
}

// WithLogger attaches a logger for per-submission debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine constructs an Engine over the given collaborators.
func NewEngine(words WordSource, dict Dictionary, opts ...Option) *Engine {
	e := &Engine{
		words:     words,
		dict:      dict,
		locale:    DefaultLocale,
		minLength: DefaultMinLength,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Locale returns the engine's locale.
func (e *Engine) Locale() string { return e.locale }

// NewGame starts a fresh game with a root word from the WordSource.
func (e *Engine) NewGame() State {
	return State{
		RootWord:  normalize.Word(e.words.PickRoot(), e.locale),
		UsedWords: []string{},
		Score:     0,
	}
}

// Submit validates raw against st. On acceptance the returned State has the
// word prepended and the score raised by its letter count; otherwise st is
// returned unchanged.
func (e *Engine) Submit(raw string, st State) (Result, State) {
	res := e.validate(raw, st)
	e.log.Debug().
		Str("root", st.RootWord).
		Str("word", res.Word).
		Str("verdict", string(res.Verdict)).
		Msg("submission")
	if !res.OK() {
		return res, st
	}

	next := State{
		RootWord:  st.RootWord,
		UsedWords: make([]string, 0, len(st.UsedWords)+1),
		Score:     st.Score + LetterCount(res.Word),
	}
	next.UsedWords = append(next.UsedWords, res.Word)
	next.UsedWords = append(next.UsedWords, st.UsedWords...)
	return res, next
}

func (e *Engine) validate(raw string, st State) Result {
	word := normalize.Word(raw, e.locale)
	if word == "" {
		return Result{Verdict: RejectedEmpty}
	}
	if st.Has(word) {
		return Result{Verdict: RejectedDuplicate, Word: word}
	}
	if !spellable(word, st.RootWord) {
		return Result{Verdict: RejectedImpossible, Word: word}
	}
	if e.minLength > 0 && LetterCount(word) < e.minLength {
		return Result{Verdict: RejectedTooShort, Word: word}
	}
	if !e.allowRoot && word == st.RootWord {
		return Result{Verdict: RejectedRootWord, Word: word}
	}
	if !e.dict.IsRealWord(word, e.locale) {
		return Result{Verdict: RejectedNotReal, Word: word}
	}
	return Result{Verdict: Accepted, Word: word}
}

// spellable reports whether every letter of word can be taken from root,
// using each letter instance of root at most once.
func spellable(word, root string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range root {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

// LetterCount is the score value of a word: its number of letters (runes).
func LetterCount(word string) int { return utf8.RuneCountInString(word) }
