// Package normalize canonicalizes submitted words and locale keys so the
// engine and every dictionary backend agree on what "the same word" means.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Word trims surrounding whitespace and lowercases s using the casing rules
// of locale. An unknown or empty locale uses language-neutral rules.
func Word(s, locale string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Casers carry state, so one is built per call.
	return cases.Lower(tag(locale)).String(s)
}

// Undetermined is the locale key for empty or malformed locales.
const Undetermined = "und"

// Locale reduces a locale string to its base language ("en-US" -> "en").
// Empty or malformed locales map to Undetermined rather than a guessed
// language.
func Locale(locale string) string {
	t, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return Undetermined
	}
	base, conf := t.Base()
	if conf == language.No || conf == language.Low {
		return Undetermined
	}
	return base.String()
}

func tag(locale string) language.Tag {
	t, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return language.Und
	}
	return t
}
