package voikko

import (
	"strings"
	"unicode"
)

// apostropheReplacer maps typographic apostrophes to the ASCII one used
// by the lexicon.
var apostropheReplacer = strings.NewReplacer(
	"\u2019", "'", // ’
	"\u02bc", "'", // ʼ
	"\u2032", "'", // ′
)

// isVowel reports whether r is a Finnish vowel, in either case.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'ä', 'ö', 'å':
		return true
	}
	return false
}

// isConsonant reports whether r is a letter other than a vowel.
func isConsonant(r rune) bool {
	return unicode.IsLetter(r) && !isVowel(r)
}

// casing classifies the letters of a word.
type casing int

const (
	caseNoLetters casing = iota
	caseLower
	caseFirstUpper
	caseAllUpper
	caseMixed
)

func wordCasing(rs []rune) casing {
	letters, upper := 0, 0
	firstUpper := false
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			if letters == 0 {
				firstUpper = true
			}
			upper++
		}
		letters++
	}
	switch {
	case letters == 0:
		return caseNoLetters
	case upper == 0:
		return caseLower
	case upper == letters && letters > 1:
		return caseAllUpper
	case upper == 1 && firstUpper:
		return caseFirstUpper
	}
	return caseMixed
}

// applyCasing gives the letters of s the casing c.
func applyCasing(s string, c casing) string {
	switch c {
	case caseAllUpper:
		return strings.ToUpper(s)
	case caseFirstUpper:
		return capitalize(s)
	}
	return s
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if unicode.IsLetter(r) {
			rs[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(rs)
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
