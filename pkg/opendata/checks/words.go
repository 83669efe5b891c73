// Package checks implements the four validation dimensions applied to a dataset:
// container format, file name, column names and cell content.
//
// Every check returns either one or more findings or the single sentinel
// message for its category, and never mutates the dataset.
package checks

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// reservedWords are Spanish prepositions and articles that must not appear
// as words in file or column names.
var reservedWords = map[string]struct{}{
	"a": {}, "al": {}, "ante": {}, "bajo": {}, "con": {}, "contra": {},
	"de": {}, "del": {}, "desde": {}, "durante": {}, "en": {}, "entre": {},
	"hacia": {}, "hasta": {}, "mediante": {}, "para": {}, "por": {},
	"segun": {}, "según": {}, "sin": {}, "sobre": {}, "tras": {},
	"el": {}, "la": {}, "los": {}, "las": {}, "lo": {},
	"un": {}, "una": {}, "unos": {}, "unas": {},
}

// languageLetters are letters flagged even though NFD leaves them whole.
var languageLetters = map[rune]struct{}{
	'ß': {}, 'æ': {}, 'Æ': {}, 'ø': {}, 'Ø': {}, 'œ': {}, 'Œ': {}, 'ł': {}, 'Ł': {},
	'¿': {}, '¡': {}, 'º': {}, 'ª': {},
}

// IsReservedWord reports whether w (any case) is a reserved preposition or article.
func IsReservedWord(w string) bool {
	_, ok := reservedWords[strings.ToLower(w)]
	return ok
}

// hasDiacritics reports whether s contains accented or language-specific letters.
func hasDiacritics(s string) bool {
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			return true
		}
		if _, ok := languageLetters[r]; ok {
			return true
		}
	}
	return false
}

// underscoreTokens splits on underscores and drops empty parts.
func underscoreTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
}

// wordTokens splits on underscores and whitespace and drops empty parts.
func wordTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' || unicode.IsSpace(r) })
}

// reservedIn returns the reserved words found among tokens, in order, without repeats.
func reservedIn(tokens []string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if IsReservedWord(lower) && !seen[lower] {
			seen[lower] = true
			found = append(found, lower)
		}
	}
	return found
}

// orSentinel returns obs, or the single sentinel when obs is empty.
func orSentinel(obs []string, sentinel string) []string {
	if len(obs) == 0 {
		return []string{sentinel}
	}
	return obs
}

// joinNames joins offending names the way every aggregated finding lists them.
func joinNames(names []string) string {
	return strings.Join(names, " | ")
}
