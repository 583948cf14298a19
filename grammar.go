package voikko

import (
	"sort"
	"strings"
	"unicode"
)

// GrammarError is a grammar problem found in a paragraph. Positions are in
// codepoints from the start of the checked text.
type GrammarError struct {
	Code             int
	StartPos         int
	Length           int
	Suggestions      []string
	ShortDescription string
}

// ruleState is the state of a detector scanning the token stream.
type ruleState int

const (
	scanning ruleState = iota
	candidate
	confirmed
)

// paragraph is the unit a detector checks.
type paragraph struct {
	toks []span
	// starts holds the token indexes that begin a sentence.
	starts []int
	// sentences counts the sentences of the paragraph.
	sentences int
}

type detector interface {
	check(p *paragraph, emit func(GrammarError))
}

// GrammarErrors checks text and returns its grammar errors ordered by
// position, described in reportLanguage (English when unknown).
func (e *Engine) GrammarErrors(text, reportLanguage string) ([]GrammarError, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(text); err != nil {
		return nil, err
	}
	if err := validateInput(reportLanguage); err != nil {
		return nil, err
	}
	return e.grammarErrors([]rune(text), reportLanguage), nil
}

// NextGrammarError returns the grammar error of text after skipping skip
// errors; ok is false when there are no more. Each call checks the whole
// text, so callers visiting every error should use GrammarErrors.
func (e *Engine) NextGrammarError(text, reportLanguage string, skip int) (gerr GrammarError, ok bool, err error) {
	errs, err := e.GrammarErrors(text, reportLanguage)
	if err != nil || skip < 0 || skip >= len(errs) {
		return GrammarError{}, false, err
	}
	return errs[skip], true, nil
}

func (e *Engine) detectors() []detector {
	return []detector{
		extraWhitespace{},
		spaceBeforePunctuation{},
		extraComma{},
		firstUppercase{opts: &e.opts},
		repeatingWord{},
		missingTerminator{opts: &e.opts},
		negativeVerb{analyze: e.lex.analyze},
	}
}

func (e *Engine) grammarErrors(text []rune, lang string) []GrammarError {
	sg := e.segmenter()
	var out []GrammarError
	emit := func(g GrammarError) {
		g.ShortDescription = GrammarErrorDescription(g.Code, lang)
		out = append(out, g)
	}
	dets := e.detectors()
	for _, p := range splitParagraphs(sg, text) {
		for _, d := range dets {
			d.check(p, emit)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartPos != out[j].StartPos {
			return out[i].StartPos < out[j].StartPos
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// splitParagraphs cuts text at blank lines and finds the sentence starts
// of each paragraph.
func splitParagraphs(sg segmenter, text []rune) []*paragraph {
	toks := sg.tz.spans(text)
	var out []*paragraph
	first := 0
	for i := 0; i <= len(toks); i++ {
		if i < len(toks) && !(toks[i].Type == TokenWhitespace && isBlankLine(toks[i].Text)) {
			continue
		}
		if i > first {
			out = append(out, newParagraph(sg, toks[first:i]))
		}
		first = i + 1
	}
	return out
}

func newParagraph(sg segmenter, toks []span) *paragraph {
	p := &paragraph{toks: toks, starts: []int{0}, sentences: 1}
	abbrev := sg.abbreviationDots(toks)
	for from := 0; from < len(toks); {
		t, k := sg.boundary(toks, abbrev, from, len(toks))
		if (t == SentenceProbable || t == SentencePossible) && k < len(toks) {
			p.starts = append(p.starts, k)
			p.sentences++
		}
		from = k
	}
	return p
}

func isLineBreakSpace(s span) bool {
	return s.Type == TokenWhitespace && strings.ContainsAny(string(s.Text), "\n\r")
}

// extraWhitespace reports runs of more than one space between tokens.
type extraWhitespace struct{}

func (extraWhitespace) check(p *paragraph, emit func(GrammarError)) {
	state := scanning
	var ws span
	for _, tk := range p.toks {
		switch {
		case tk.Type != TokenWhitespace:
			if state == confirmed {
				emit(GrammarError{
					Code: GCExtraWhitespace, StartPos: ws.Start, Length: len(ws.Text),
					Suggestions: []string{" "},
				})
			}
			state = candidate
		case state == candidate && len(tk.Text) > 1 && !isLineBreakSpace(tk):
			ws = tk
			state = confirmed
		default:
			state = scanning
		}
	}
}

// spaceBeforePunctuation reports whitespace between a word and a
// closing punctuation mark.
type spaceBeforePunctuation struct{}

func isClosingPunctuation(s span) bool {
	return s.is('.') || s.is(',') || s.is(':') || s.is(';') || s.is('!') || s.is('?') || s.is(')')
}

func (spaceBeforePunctuation) check(p *paragraph, emit func(GrammarError)) {
	state := scanning
	var ws span
	for i, tk := range p.toks {
		switch {
		case tk.Type == TokenWord:
			state = candidate
		case state == candidate && tk.Type == TokenWhitespace && !isLineBreakSpace(tk):
			ws = tk
			state = confirmed
		case state == confirmed && isClosingPunctuation(tk):
			// "sana ..." is an ellipsis, not a misplaced dot.
			if tk.is('.') && i+1 < len(p.toks) && p.toks[i+1].is('.') {
				state = scanning
				continue
			}
			emit(GrammarError{
				Code: GCSpaceBeforePunctuation, StartPos: ws.Start, Length: tk.end() - ws.Start,
				Suggestions: []string{string(tk.Text)},
			})
			state = scanning
		default:
			state = scanning
		}
	}
}

// extraComma reports two commas separated by nothing but whitespace.
type extraComma struct{}

func (extraComma) check(p *paragraph, emit func(GrammarError)) {
	state := scanning
	var first span
	for _, tk := range p.toks {
		switch {
		case tk.is(','):
			if state == candidate {
				emit(GrammarError{
					Code: GCExtraComma, StartPos: first.Start, Length: tk.end() - first.Start,
					Suggestions: []string{","},
				})
				state = scanning
				continue
			}
			first = tk
			state = candidate
		case tk.Type == TokenWhitespace && state == candidate:
		default:
			state = scanning
		}
	}
}

// firstUppercase reports sentences that start with a lower-case word.
type firstUppercase struct {
	opts *Options
}

func (d firstUppercase) check(p *paragraph, emit func(GrammarError)) {
	for n, start := range p.starts {
		if n == 0 && d.opts.AcceptBulletedListsInGc {
			continue
		}
		for _, tk := range p.toks[start:] {
			if tk.Type == TokenWhitespace || isOpener(tk) {
				continue
			}
			if tk.Type == TokenWord && unicode.IsLower(tk.Text[0]) {
				emit(GrammarError{
					Code: GCWriteFirstUppercase, StartPos: tk.Start, Length: len(tk.Text),
					Suggestions: []string{capitalize(string(tk.Text))},
				})
			}
			break
		}
	}
}

// repeatingWord reports a word immediately repeated after whitespace.
type repeatingWord struct{}

func (repeatingWord) check(p *paragraph, emit func(GrammarError)) {
	state := scanning
	var prev span
	for _, tk := range p.toks {
		switch tk.Type {
		case TokenWhitespace:
			continue
		case TokenWord:
			if state == candidate && strings.EqualFold(string(prev.Text), string(tk.Text)) && !isNumber(tk.Text) {
				emit(GrammarError{
					Code: GCRepeatingWord, StartPos: prev.Start, Length: tk.end() - prev.Start,
					Suggestions: []string{string(tk.Text)},
				})
			}
			prev = tk
			state = candidate
		default:
			state = scanning
		}
	}
}

func isNumber(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// missingTerminator reports a paragraph whose last sentence does not
// end with terminating punctuation.
type missingTerminator struct {
	opts *Options
}

func (d missingTerminator) check(p *paragraph, emit func(GrammarError)) {
	if d.opts.AcceptUnfinishedParagraphsInGc || d.opts.AcceptBulletedListsInGc {
		return
	}
	if d.opts.AcceptTitlesInGc && p.sentences == 1 {
		return
	}
	state := scanning
	var last span
	for _, tk := range p.toks {
		switch {
		case tk.Type == TokenWhitespace:
		case tk.Type == TokenWord:
			last = tk
			state = candidate
		case isTerminator(tk):
			state = scanning
		case isCloser(tk) && state == scanning:
		default:
			if state == scanning {
				state = candidate
				last = tk
			}
		}
	}
	if state == candidate && last.Text != nil {
		emit(GrammarError{
			Code: GCTerminatingPunctuationMissing, StartPos: last.Start, Length: len(last.Text),
		})
	}
}

// negativeVerb reports a negative verb followed by a verb form that is
// not the connegative.
type negativeVerb struct {
	analyze func(string) ([]Analysis, error)
}

func (d negativeVerb) readings(tk span) []Analysis {
	as, err := d.analyze(string(tk.Text))
	if err != nil {
		return nil
	}
	return as
}

func (d negativeVerb) check(p *paragraph, emit func(GrammarError)) {
	state := scanning
	var neg span
	for _, tk := range p.toks {
		switch tk.Type {
		case TokenWhitespace:
			continue
		case TokenWord:
			as := d.readings(tk)
			if state == candidate && isFiniteAffirmative(as) {
				emit(GrammarError{
					Code: GCNegativeVerbMismatch, StartPos: neg.Start, Length: tk.end() - neg.Start,
				})
				state = scanning
				continue
			}
			if allOfClass(as, ClassNegative) {
				neg = tk
				state = candidate
				continue
			}
		}
		state = scanning
	}
}

func allOfClass(as []Analysis, class string) bool {
	for _, a := range as {
		if a.Class != class {
			return false
		}
	}
	return len(as) > 0
}

// isFiniteAffirmative holds when every reading is a verb form that
// cannot follow a negative verb.
func isFiniteAffirmative(as []Analysis) bool {
	for _, a := range as {
		if a.Class != ClassVerb || a.Negative != "false" {
			return false
		}
	}
	return len(as) > 0
}
