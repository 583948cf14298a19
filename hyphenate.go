package voikko

import (
	"strings"
	"unicode"
)

// Hyphenation pattern values, one per codepoint.
const (
	patNone    = ' '
	patHyphen  = '-'
	patReplace = '='
)

// HyphenationPattern returns one character per codepoint of word:
// ' ' for no break, '-' for a break before the character and '=' for a
// break that replaces the character (an existing hyphen).
func (e *Engine) HyphenationPattern(word string) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	if err := validateInput(word); err != nil {
		return "", err
	}
	return e.hyphenationPattern(word)
}

// Hyphenate inserts hyphen at every break point of word. With
// allowContextChanges false, breaks at existing hyphens are dropped so
// that removing the inserted hyphens restores word.
func (e *Engine) Hyphenate(word, hyphen string, allowContextChanges bool) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	if err := validateInput(word); err != nil {
		return "", err
	}
	if err := validateInput(hyphen); err != nil {
		return "", err
	}
	pattern, err := e.hyphenationPattern(word)
	if err != nil {
		return "", err
	}
	pat := []rune(pattern)
	var b strings.Builder
	for i, r := range []rune(word) {
		switch {
		case pat[i] == patHyphen:
			b.WriteString(hyphen)
			b.WriteRune(r)
		case pat[i] == patNone || !allowContextChanges:
			b.WriteRune(r)
		case r == '-':
			b.WriteRune('-')
		default:
			b.WriteString(hyphen)
		}
	}
	return b.String(), nil
}

func (e *Engine) hyphenationPattern(word string) (string, error) {
	runes := []rune(word)
	if len(runes) > MaxWordChars {
		return "", errTooLong(len(runes))
	}
	h := hyphenator{opts: &e.opts}
	if len(runes) < e.opts.MinHyphenatedWordLength {
		return strings.Repeat(" ", len(runes)), nil
	}
	analyses, err := e.lex.analyze(apostropheReplacer.Replace(word))
	if err != nil {
		return "", err
	}
	if len(analyses) == 0 {
		if !e.opts.HyphenateUnknownWords {
			return strings.Repeat(" ", len(runes)), nil
		}
		return string(h.pattern(runes, plainParts(runes))), nil
	}
	var merged []rune
	for _, a := range analyses {
		parts, ok := structureParts(runes, a.Structure)
		if !ok {
			tracer().Errorf("voikko: structure %q does not fit %q", a.Structure, word)
			parts = plainParts(runes)
		}
		merged = intersectPatterns(merged, h.pattern(runes, parts))
	}
	return string(merged), nil
}

// wordParts records, per codepoint, where compound parts start and where
// hyphenation is forbidden.
type wordParts struct {
	boundary []bool
	noBreak  []bool
}

// plainParts treats word as a single part, split only at hyphens.
func plainParts(word []rune) wordParts {
	return wordParts{
		boundary: make([]bool, len(word)),
		noBreak:  make([]bool, len(word)),
	}
}

// structureParts aligns an analysis structure with word.
func structureParts(word []rune, structure string) (wordParts, bool) {
	p := plainParts(word)
	i := 0
	for _, c := range structure {
		if c == '=' {
			if i < len(word) && i > 0 {
				p.boundary[i] = true
			}
			continue
		}
		if i >= len(word) {
			return p, false
		}
		if c == 'q' || c == 'j' {
			p.noBreak[i] = true
		}
		i++
	}
	return p, i == len(word)
}

type hyphenator struct {
	opts *Options
}

// pattern hyphenates word split into its compound parts.
func (h hyphenator) pattern(word []rune, parts wordParts) []rune {
	n := len(word)
	pat := []rune(strings.Repeat(" ", n))
	start := 0
	flush := func(end int) {
		h.syllabify(word, parts, pat, start, end)
	}
	for k := 0; k < n; k++ {
		switch {
		case word[k] == '-':
			flush(k)
			if k > 0 && k < n-1 {
				pat[k] = patReplace
			}
			start = k + 1
		case parts.boundary[k] && k > start:
			flush(k)
			pat[k] = patHyphen
			start = k
		}
	}
	flush(n)
	return pat
}

// syllabify marks the syllable breaks of the part word[a:b].
func (h hyphenator) syllabify(word []rune, parts wordParts, pat []rune, a, b int) {
	part := word[a:b]
	if len(part) < h.opts.MinHyphenatedWordLength || len(part) < 2 {
		return
	}
	for _, k := range syllableBreaks(part) {
		if parts.noBreak[a+k] {
			continue
		}
		if h.opts.NoUglyHyphenation && isUglyBreak(part, k) {
			continue
		}
		pat[a+k] = patHyphen
	}
}

// isUglyBreak reports breaks that leave a single letter at either end of
// a part, and breaks between two vowels.
func isUglyBreak(part []rune, k int) bool {
	if k == 1 || k == len(part)-1 {
		return true
	}
	return isVowel(part[k-1]) && isVowel(part[k])
}

// syllableBreaks applies the Finnish syllable rules to one compound part
// and returns the indexes before which a break is allowed.
func syllableBreaks(part []rune) []int {
	lower := make([]rune, len(part))
	for i, r := range part {
		lower[i] = unicode.ToLower(r)
	}
	var breaks []int
	seenVowel := isVowel(lower[0])
	// firstSyllable stays true until a consonant follows the first vowel.
	firstSyllable := true
	// unit is true when lower[k-2], lower[k-1] form one syllable nucleus.
	unit := false
	for k := 1; k < len(lower); k++ {
		prev, cur := lower[k-1], lower[k]
		switch {
		case isConsonant(cur) && seenVowel && k+1 < len(lower) && isVowel(lower[k+1]):
			breaks = append(breaks, k)
			unit = false
		case isVowel(prev) && isVowel(cur):
			if !unit && vowelsJoin(prev, cur, firstSyllable) {
				unit = true
			} else {
				breaks = append(breaks, k)
				unit = false
			}
		default:
			unit = false
		}
		if isVowel(cur) {
			seenVowel = true
		} else if seenVowel {
			firstSyllable = false
		}
	}
	return breaks
}

// vowelsJoin reports whether two adjacent vowels belong to one syllable.
func vowelsJoin(a, b rune, firstSyllable bool) bool {
	if a == b {
		return true
	}
	switch string([]rune{a, b}) {
	case "ai", "ei", "oi", "ui", "yi", "äi", "öi",
		"au", "eu", "iu", "ou",
		"ey", "iy", "äy", "öy":
		return true
	case "ie", "uo", "yö":
		return firstSyllable
	}
	return false
}

// intersectPatterns keeps the breaks two patterns agree on.
func intersectPatterns(acc, p []rune) []rune {
	if acc == nil {
		return p
	}
	for i := range acc {
		if acc[i] != p[i] {
			acc[i] = patNone
		}
	}
	return acc
}
