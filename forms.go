package voikko

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// maxFormDepth bounds the number of continuation classes chained
// after a stem when listing forms.
const maxFormDepth = 8

// maxForms bounds the forms listed for one base form.
const maxForms = 5000

// Forms lists the word forms generated from the lemmas with baseForm,
// in lexicon order. Compound continuations are not followed.
func (lex *Lexicon) Forms(baseForm string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	var forms []string
	add := func(f string) {
		if len(forms) < maxForms && seen.Add(f) {
			forms = append(forms, f)
		}
	}
	for _, lemma := range lex.Lemmas(baseForm) {
		for _, st := range lemma.Stems {
			lex.expand(st.Surface, st.Next, 0, add)
		}
	}
	return forms
}

// expand emits prefix followed by every ending reachable from the
// continuation next.
func (lex *Lexicon) expand(prefix, next string, depth int, emit func(string)) {
	switch next {
	case nextEnd:
		emit(prefix)
		return
	case nextRoot, nextCompound:
		return
	}
	c := lex.classes[next]
	if c == nil || depth >= maxFormDepth {
		return
	}
	for _, s := range c.Suffixes {
		for _, n := range s.Next {
			lex.expand(prefix+s.Surface, n, depth+1, emit)
		}
	}
}
