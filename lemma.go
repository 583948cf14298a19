package voikko

import (
	"fmt"
	"strings"
	"unicode"
)

// Word classes used by the bundled lexicon.
const (
	ClassNoun        = "nimisana"
	ClassAdjective   = "laatusana"
	ClassVerb        = "teonsana"
	ClassPronoun     = "asemosana"
	ClassNumeral     = "lukusana"
	ClassConjunction = "sidesana"
	ClassAdverb      = "seikkasana"
	ClassNegative    = "kieltosana"
	ClassFirstName   = "etunimi"
	ClassPlaceName   = "paikannimi"
	ClassAbbrev      = "lyhenne"
)

// noHyphenMark precedes a stem letter before which no hyphen is allowed.
const noHyphenMark = '^'

// Stem is one entry point of a lemma into the continuation classes.
type Stem struct {
	// Surface is the stem in standard case, without markers.
	Surface string
	// structure holds one structure letter per rune of Surface.
	structure string
	Next      string
	Attrs     []Attr
	Lemma     *Lemma
}

// Lemma is a dictionary headword with its stems.
type Lemma struct {
	BaseForm string
	Class    string
	Stems    []*Stem
	Attrs    []Attr
}

// newLemma parses a line from lexicon.txt.
// Line format: baseform|class|stem:Next[:k=v;k=v],...|k=v,k=v
func newLemma(line string) (*Lemma, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return nil, fmt.Errorf("want at least 3 fields, got %d", len(parts))
	}
	l := &Lemma{
		BaseForm: strings.TrimSpace(parts[0]),
		Class:    strings.TrimSpace(parts[1]),
	}
	if l.BaseForm == "" {
		return nil, fmt.Errorf("empty base form")
	}
	if len(parts) > 3 {
		l.Attrs = parseAttrs(parts[3], ",")
	}
	for _, spec := range strings.Split(parts[2], ",") {
		eclats := strings.SplitN(strings.TrimSpace(spec), ":", 3)
		if len(eclats) < 2 {
			return nil, fmt.Errorf("stem %q of %s has no continuation", spec, l.BaseForm)
		}
		surface, structure := stemStructure(eclats[0])
		if surface == "" {
			return nil, fmt.Errorf("empty stem in %s", l.BaseForm)
		}
		st := &Stem{
			Surface:   surface,
			structure: structure,
			Next:      eclats[1],
			Lemma:     l,
		}
		if len(eclats) == 3 {
			st.Attrs = parseAttrs(eclats[2], ";")
		}
		l.Stems = append(l.Stems, st)
	}
	return l, nil
}

// stemStructure strips hyphenation markers from raw and returns the
// surface together with its structure letters.
func stemStructure(raw string) (string, string) {
	var surface, structure strings.Builder
	noHyphen := false
	for _, r := range raw {
		if r == noHyphenMark {
			noHyphen = true
			continue
		}
		surface.WriteRune(r)
		structure.WriteRune(structureLetter(r, noHyphen))
		noHyphen = false
	}
	return surface.String(), structure.String()
}

// structureLetter maps a rune to its structure letter: p/q for lower case,
// i/j for upper case (q and j forbid hyphenation before the letter).
// Other runes are kept as they are.
func structureLetter(r rune, noHyphen bool) rune {
	switch {
	case unicode.IsUpper(r) && noHyphen:
		return 'j'
	case unicode.IsUpper(r):
		return 'i'
	case unicode.IsLetter(r) && noHyphen:
		return 'q'
	case unicode.IsLetter(r):
		return 'p'
	}
	return r
}

// affixStructure computes the structure letters of a suffix surface.
func affixStructure(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(structureLetter(r, false))
	}
	return b.String()
}
