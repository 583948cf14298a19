package voikko

import (
	"fmt"
	"strings"

	"github.com/derekparker/trie"
)

// Lexicon is a loaded dictionary package: the compiled transducer with
// the lemmas and classes it was built from. It is immutable and may be
// shared by any number of engines.
type Lexicon struct {
	dict     Dictionary
	alphabet string

	// classes maps class name → *Class.
	classes map[string]*Class
	lemmas  []*Lemma
	// byBase maps a base form → lemmas with that base form.
	byBase map[string][]*Lemma

	fst     *transducer
	abbrevs *abbreviations
}

// LoadLexicon locates and loads the dictionary for languageTag, searching
// searchPaths first, then the standard paths and the bundled dictionary.
func LoadLexicon(languageTag string, searchPaths ...string) (*Lexicon, error) {
	if err := validateInput(languageTag); err != nil {
		return nil, err
	}
	for _, p := range searchPaths {
		if err := validateInput(p); err != nil {
			return nil, err
		}
	}
	loc, err := findDictionary(languageTag, searchPaths)
	if err != nil {
		return nil, err
	}
	lex, err := loadLocation(loc)
	if err != nil {
		return nil, &LoadError{Language: languageTag, Err: err}
	}
	return lex, nil
}

func loadLocation(loc dictionaryLocation) (*Lexicon, error) {
	ld := newLoader(loc.fsys, loc.dir)
	if err := ld.loadParadigms(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := ld.loadLemmas(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := ld.loadAbbreviations(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	t, err := compile(ld)
	if err != nil {
		return nil, err
	}

	lex := &Lexicon{
		dict:     loc.Dictionary,
		alphabet: loc.alphabet,
		classes:  ld.classes,
		lemmas:   ld.lemmas,
		byBase:   make(map[string][]*Lemma, len(ld.lemmas)),
		fst:      t,
		abbrevs:  newAbbreviations(ld.abbreviations),
	}
	for _, l := range ld.lemmas {
		lex.byBase[l.BaseForm] = append(lex.byBase[l.BaseForm], l)
	}
	tracer().Infof("voikko: loaded %s from %s: %d lemmas, %d classes, %d states",
		loc.Tag(), loc.root, len(lex.lemmas), len(lex.classes), len(t.states))
	return lex, nil
}

// Dictionary returns the descriptor of the loaded dictionary.
func (lex *Lexicon) Dictionary() Dictionary {
	return lex.dict
}

// Class returns the named continuation class, or nil.
func (lex *Lexicon) Class(name string) *Class {
	return lex.classes[name]
}

// Lemmas returns the lemmas with the given base form.
func (lex *Lexicon) Lemmas(baseForm string) []*Lemma {
	return lex.byBase[baseForm]
}

// builtinAbbreviations are recognised whatever the dictionary says.
var builtinAbbreviations = []string{
	"esim", "mm", "ym", "jne", "yms", "ks", "tms", "ns",
	"etc", "mr", "mrs", "dr", "e.g", "i.e",
}

// abbreviations is the set of words that may be followed by a dot
// without ending a sentence, stored lower-case without the final dot.
type abbreviations struct {
	t *trie.Trie
}

func newAbbreviations(extra []string) *abbreviations {
	a := &abbreviations{t: trie.New()}
	for _, w := range builtinAbbreviations {
		a.t.Add(w, nil)
	}
	for _, w := range extra {
		a.t.Add(strings.ToLower(w), nil)
	}
	return a
}

// has reports whether w (without the dot) is an abbreviation.
func (a *abbreviations) has(w string) bool {
	if a == nil {
		return false
	}
	_, ok := a.t.Find(strings.ToLower(w))
	return ok
}

// hasPrefix reports whether some abbreviation starts with p.
func (a *abbreviations) hasPrefix(p string) bool {
	if a == nil {
		return false
	}
	return a.t.HasKeysWithPrefix(strings.ToLower(p))
}
