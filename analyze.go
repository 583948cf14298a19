package voikko

import (
	"errors"
	"fmt"
	"strings"
)

var errEpsilonDepth = fmt.Errorf("%w: epsilon chain deeper than %d", ErrInternal, maxEpsilonDepth)

// walker enumerates the accepting paths of a transducer for one input.
type walker struct {
	t      *transducer
	target int32
	in     []rune
	path   []int32
	limit  int
	found  int
	emit   func(path []int32)
}

// walk calls emit for every path that consumes the folded input and ends
// in target, in traversal order, stopping after limit paths.
func (t *transducer) walk(in []rune, target int32, limit int, emit func(path []int32)) error {
	w := &walker{t: t, target: target, in: in, limit: limit, emit: emit}
	return w.dfs(t.root, 0, 0)
}

// dfs follows epsilon arcs before labelled arcs; the outputs of the
// epsilon arcs taken so far form the path.
func (w *walker) dfs(s int32, pos, depth int) error {
	if w.found >= w.limit {
		return nil
	}
	if s == w.target && pos == len(w.in) {
		w.found++
		w.emit(w.path)
		return nil
	}
	st := &w.t.states[s]
	for _, a := range st.eps {
		if depth >= maxEpsilonDepth {
			return errEpsilonDepth
		}
		w.path = append(w.path, a.out)
		err := w.dfs(a.to, pos, depth+1)
		w.path = w.path[:len(w.path)-1]
		if err != nil {
			return err
		}
	}
	if pos == len(w.in) {
		return nil
	}
	r := w.in[pos]
	for _, a := range st.labels {
		if foldRune(a.label) != r {
			continue
		}
		if err := w.dfs(a.to, pos+1, 0); err != nil {
			return err
		}
	}
	return nil
}

// analyze returns the analyses of word in transducer order. Words longer
// than MaxWordChars have none.
func (lex *Lexicon) analyze(word string) ([]Analysis, error) {
	return lex.analyzeTo(word, lex.fst.final)
}

// compoundInitial returns the readings of word as the first part of a
// hyphenated compound ("linja" in "linja-").
func (lex *Lexicon) compoundInitial(word string) ([]Analysis, error) {
	as, err := lex.analyzeTo(word+"-", lex.fst.compound)
	if err != nil {
		return nil, err
	}
	// The structure covers the hyphen, drop it again.
	for i := range as {
		as[i].Structure = strings.TrimSuffix(as[i].Structure, "-")
	}
	return as, nil
}

func (lex *Lexicon) analyzeTo(word string, target int32) ([]Analysis, error) {
	runes := []rune(word)
	if len(runes) == 0 || len(runes) > MaxWordChars {
		return nil, nil
	}
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = foldRune(r)
	}
	var out []Analysis
	err := lex.fst.walk(folded, target, maxAnalyses, func(path []int32) {
		out = append(out, lex.fst.buildAnalysis(path))
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			tracer().Errorf("voikko: analysis of %q aborted: %v", word, err)
		}
		return nil, err
	}
	return out, nil
}

// buildAnalysis assembles the attributes emitted along an accepting path.
func (t *transducer) buildAnalysis(path []int32) Analysis {
	last := -1
	for i, out := range path {
		if t.outputs[out].stem != nil {
			last = i
		}
	}

	var a Analysis
	var structure, fst, bases, prefix strings.Builder
	for i, out := range path {
		m := &t.outputs[out]
		structure.WriteString(m.structure)
		fst.WriteByte('[')
		if m.stem != nil {
			fst.WriteByte('L')
		}
		fst.WriteString(m.class)
		fst.WriteByte(']')
		fst.WriteString(m.surface)
		switch {
		case m.stem != nil:
			bases.WriteString("+" + m.surface + "(" + m.stem.Lemma.BaseForm + ")")
		case m.surface == "-":
			bases.WriteString("+-")
		}
		if i < last {
			prefix.WriteString(m.surface)
		}
	}
	a.Structure = structure.String()
	a.FSTOutput = fst.String()
	a.WordBases = bases.String()

	if last >= 0 {
		st := t.outputs[path[last]].stem
		a.BaseForm = prefix.String() + st.Lemma.BaseForm
		a.Class = st.Lemma.Class
		for _, at := range st.Lemma.Attrs {
			a.set(at.Key, at.Value)
		}
		for _, out := range path[last:] {
			for _, at := range t.outputs[out].attrs {
				a.set(at.Key, at.Value)
			}
		}
	}
	return a
}
