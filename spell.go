package voikko

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Spell reports whether word is correctly spelled under the current
// options. Unknown words are reported as misspelled, not as errors.
func (e *Engine) Spell(word string) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	if err := validateInput(word); err != nil {
		return false, err
	}
	return e.spell(word)
}

func (e *Engine) spell(word string) (bool, error) {
	if ok, hit := e.cache.get(word); hit {
		return ok, nil
	}
	ok, err := e.spellUncached(word)
	if err != nil {
		return false, err
	}
	e.cache.add(word, ok)
	return ok, nil
}

func (e *Engine) spellUncached(word string) (bool, error) {
	n := utf8.RuneCountInString(word)
	if n == 0 || n > MaxWordChars {
		return false, nil
	}
	o := &e.opts
	if o.IgnoreNonwords && isNonword(word) {
		return true, nil
	}
	if o.IgnoreNumbers && hasDigit(word) {
		return true, nil
	}
	if o.IgnoreUppercase && wordCasing([]rune(word)) == caseAllUpper {
		return true, nil
	}

	w := apostropheReplacer.Replace(word)
	if o.IgnoreDot && len(w) > 1 && strings.HasSuffix(w, ".") {
		w = w[:len(w)-1]
	}
	ok, err := e.spellForm(w)
	if ok || err != nil {
		return ok, err
	}

	switch {
	case len(w) > 1 && strings.HasSuffix(w, "-") && !strings.HasPrefix(w, "-"):
		// "linja-" as in "linja- ja raitiovaunu"
		return e.spellCompoundInitial(w[:len(w)-1])
	case len(w) > 1 && strings.HasPrefix(w, "-") && !strings.HasSuffix(w, "-"):
		if ok, err := e.spellForm(w[1:]); ok || err != nil {
			return ok, err
		}
	}
	if o.AcceptExtraHyphens && strings.Contains(strings.Trim(w, "-"), "-") {
		if ok, err := e.spellParts(strings.Split(w, "-")); ok || err != nil {
			return ok, err
		}
	}
	if o.AcceptMissingHyphens {
		return e.spellCompoundInitial(w)
	}
	return false, nil
}

// spellForm checks w against the lexicon and the case rules.
func (e *Engine) spellForm(w string) (bool, error) {
	analyses, err := e.lex.analyze(w)
	if err != nil {
		return false, err
	}
	return e.anyCaseMatches(w, analyses), nil
}

func (e *Engine) spellCompoundInitial(w string) (bool, error) {
	analyses, err := e.lex.compoundInitial(w)
	if err != nil {
		return false, err
	}
	return e.anyCaseMatches(w, analyses), nil
}

func (e *Engine) spellParts(parts []string) (bool, error) {
	for _, p := range parts {
		if p == "" {
			return false, nil
		}
		ok, err := e.spellForm(p)
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func (e *Engine) anyCaseMatches(w string, analyses []Analysis) bool {
	rs := []rune(w)
	for _, a := range analyses {
		if caseMatches(rs, a.Structure, &e.opts) {
			return true
		}
	}
	return false
}

// caseMatches checks the case of word against the standard case recorded
// in structure. Whole-word upper case and an upper-case first letter are
// accepted when the options allow them.
func caseMatches(word []rune, structure string, o *Options) bool {
	letters := []rune(strings.ReplaceAll(structure, "=", ""))
	if len(letters) != len(word) {
		return false
	}
	first := -1
	exact := true
	for i, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if first < 0 {
			first = i
		}
		switch letters[i] {
		case 'i', 'j':
			if !unicode.IsUpper(r) {
				exact = false
			}
		case 'p', 'q':
			if unicode.IsUpper(r) {
				if i != first || !o.AcceptFirstUppercase {
					exact = false
				}
			}
		}
	}
	if exact {
		return true
	}
	return o.AcceptAllUppercase && wordCasing(word) == caseAllUpper
}

// isNonword recognises URLs, e-mail addresses and file paths.
func isNonword(w string) bool {
	switch {
	case strings.Contains(w, "://"):
		return true
	case strings.HasPrefix(strings.ToLower(w), "www."):
		return true
	case strings.HasPrefix(w, "/") && strings.Count(w, "/") > 1:
		return true
	}
	if at := strings.Index(w, "@"); at > 0 && strings.Contains(w[at+1:], ".") {
		return true
	}
	return false
}
