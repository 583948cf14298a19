package voikko

import (
	"fmt"
	"unicode"
)

const (
	// MaxWordChars is the longest word, in codepoints, that is analysed.
	MaxWordChars = 255
	// maxAnalyses bounds the number of analyses returned for one word.
	maxAnalyses = 100
	// maxEpsilonDepth bounds consecutive epsilon transitions on a path.
	maxEpsilonDepth = 32
)

// arc is a transition of the transducer. Labelled arcs consume one input
// rune; epsilon arcs (label 0) consume nothing and emit the morpheme out.
type arc struct {
	label rune
	to    int32
	out   int32
}

type fstState struct {
	// eps holds epsilon arcs in lexicon order.
	eps []arc
	// labels holds labelled arcs in insertion order.
	labels []arc
}

// morpheme is the output of one lexicon entry.
type morpheme struct {
	// class is the owning continuation class, or the word class for stems.
	class     string
	surface   string
	structure string
	attrs     []Attr
	// stem is set for stem morphemes.
	stem *Stem
}

// transducer is the compiled lexicon: one trie per continuation class whose
// leaves are joined to the following classes by epsilon arcs.
type transducer struct {
	states  []fstState
	outputs []morpheme

	final    int32
	root     int32
	compound int32
	classes  map[string]int32
}

func (t *transducer) newState() int32 {
	t.states = append(t.states, fstState{})
	return int32(len(t.states) - 1)
}

func (t *transducer) addOutput(m morpheme) int32 {
	t.outputs = append(t.outputs, m)
	return int32(len(t.outputs) - 1)
}

// addPath extends the trie at from with surface and joins its end to `to`
// by an epsilon arc emitting out.
func (t *transducer) addPath(from int32, surface string, to, out int32) {
	cur := from
	for _, r := range surface {
		next := int32(-1)
		for _, a := range t.states[cur].labels {
			if a.label == r {
				next = a.to
				break
			}
		}
		if next < 0 {
			next = t.newState()
			t.states[cur].labels = append(t.states[cur].labels, arc{label: r, to: next, out: -1})
		}
		cur = next
	}
	t.states[cur].eps = append(t.states[cur].eps, arc{to: to, out: out})
}

// compile builds the transducer for the classes and lemmas read by ld.
func compile(ld *loader) (*transducer, error) {
	t := &transducer{classes: make(map[string]int32, len(ld.order))}
	t.final = t.newState()
	t.root = t.newState()
	t.compound = t.newState()
	for _, name := range ld.order {
		t.classes[name] = t.newState()
	}

	resolve := func(next string) (int32, error) {
		switch next {
		case nextEnd:
			return t.final, nil
		case nextRoot:
			return t.root, nil
		case nextCompound:
			return t.compound, nil
		}
		s, ok := t.classes[next]
		if !ok {
			return 0, fmt.Errorf("%w: unknown continuation class %q", ErrInternal, next)
		}
		return s, nil
	}

	for _, lemma := range ld.lemmas {
		for _, st := range lemma.Stems {
			to, err := resolve(st.Next)
			if err != nil {
				return nil, fmt.Errorf("stem %s of %s: %w", st.Surface, lemma.BaseForm, err)
			}
			out := t.addOutput(morpheme{
				class:     lemma.Class,
				surface:   st.Surface,
				structure: "=" + st.structure,
				attrs:     st.Attrs,
				stem:      st,
			})
			t.addPath(t.root, st.Surface, to, out)
			if ld.compound[lemma.Class] {
				t.addPath(t.compound, st.Surface, to, out)
			}
		}
	}

	for _, name := range ld.order {
		c := ld.classes[name]
		for _, s := range c.Suffixes {
			out := t.addOutput(morpheme{
				class:     c.Name,
				surface:   s.Surface,
				structure: affixStructure(s.Surface),
				attrs:     s.Attrs,
			})
			for _, next := range s.Next {
				to, err := resolve(next)
				if err != nil {
					return nil, fmt.Errorf("class %s: %w", c.Name, err)
				}
				t.addPath(t.classes[name], s.Surface, to, out)
			}
		}
	}

	if err := t.checkEpsilonCycles(); err != nil {
		return nil, err
	}
	return t, nil
}

// checkEpsilonCycles fails when epsilon arcs alone can loop, which would
// let a traversal run without consuming input.
func (t *transducer) checkEpsilonCycles() error {
	const (
		white = iota
		grey
		black
	)
	color := make([]uint8, len(t.states))
	var visit func(s int32) error
	visit = func(s int32) error {
		color[s] = grey
		for _, a := range t.states[s].eps {
			switch color[a.to] {
			case grey:
				return fmt.Errorf("%w: epsilon cycle through %q", ErrInternal, t.outputs[a.out].class)
			case white:
				if err := visit(a.to); err != nil {
					return err
				}
			}
		}
		color[s] = black
		return nil
	}
	for s := range t.states {
		if color[s] == white {
			if err := visit(int32(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

// foldRune maps r to the case used for matching input.
func foldRune(r rune) rune {
	return unicode.ToLower(r)
}
