package voikko

import (
	"strings"
	"unicode"
)

// SentenceType tells how certain a sentence boundary is.
type SentenceType int

const (
	// SentenceNone: no further boundary, the rest of the text follows.
	SentenceNone SentenceType = iota
	// SentenceNoStart: punctuation that does not start a new sentence.
	SentenceNoStart
	SentenceProbable
	SentencePossible
)

func (t SentenceType) String() string {
	switch t {
	case SentenceNoStart:
		return "NO_START"
	case SentenceProbable:
		return "PROBABLE"
	case SentencePossible:
		return "POSSIBLE"
	}
	return "NONE"
}

// Sentence is a piece of text ending at a sentence boundary of Type.
type Sentence struct {
	Type SentenceType
	Text string
}

// maxAbbreviationParts bounds dotted abbreviations such as "e.g.".
const maxAbbreviationParts = 4

type segmenter struct {
	tz      tokenizer
	abbrevs *abbreviations
}

func isTerminator(s span) bool {
	return s.is('.') || s.is('!') || s.is('?') || s.is('…')
}

func isCloser(s span) bool {
	return s.is('"') || s.is('”') || s.is('’') || s.is('»') || s.is(')') || s.is(']')
}

func isOpener(s span) bool {
	return s.is('"') || s.is('“') || s.is('”') || s.is('«') || s.is('»') ||
		s.is('(') || s.is('–') || s.is('—') || s.is('-') || s.is('\'')
}

// abbreviationDots returns the indexes of '.' tokens that end an
// abbreviation. Dotted abbreviations are matched greedily.
func (sg segmenter) abbreviationDots(toks []span) map[int]bool {
	dots := make(map[int]bool)
	for i := 0; i < len(toks); i++ {
		if toks[i].Type != TokenWord || (i > 0 && toks[i-1].is('.')) {
			continue
		}
		cand := strings.ToLower(string(toks[i].Text))
		end := i
		for parts := 1; parts < maxAbbreviationParts; parts++ {
			if end+2 >= len(toks) || !toks[end+1].is('.') || toks[end+2].Type != TokenWord {
				break
			}
			longer := cand + "." + strings.ToLower(string(toks[end+2].Text))
			if !sg.abbrevs.hasPrefix(longer) {
				break
			}
			cand, end = longer, end+2
		}
		if end+1 < len(toks) && toks[end+1].is('.') && sg.abbrevs.has(cand) {
			dots[end+1] = true
		}
	}
	return dots
}

// next returns the type of the first sentence boundary in text and the
// number of runes up to the start of the following sentence.
func (sg segmenter) next(text []rune) (SentenceType, int) {
	if len(text) == 0 {
		return SentenceNone, 0
	}
	toks := sg.tz.spans(text)
	t, k := sg.boundary(toks, sg.abbreviationDots(toks), 0, len(toks))
	return t, spanOffset(toks, k, len(text))
}

// boundary scans toks[from:to] for the first sentence boundary. It returns
// the boundary type and the index of the token starting the following
// sentence, or to when the window holds no boundary.
func (sg segmenter) boundary(toks []span, abbrev map[int]bool, from, to int) (SentenceType, int) {
	for i := from; i < to; i++ {
		tk := toks[i]
		if tk.Type == TokenWhitespace && i > from && i+1 < to && isBlankLine(tk.Text) {
			return SentenceProbable, i + 1
		}
		if !isTerminator(tk) {
			continue
		}
		j := i + 1
		for j < to && (isTerminator(toks[j]) || isCloser(toks[j])) {
			j++
		}
		if j+1 >= to || toks[j].Type != TokenWhitespace {
			i = j - 1
			continue
		}
		ws, nx := toks[j], toks[j+1]
		if isBlankLine(ws.Text) {
			return SentenceProbable, j + 1
		}
		abbrevDot := tk.is('.') && j == i+1 && abbrev[i]
		switch t := classifyStart(nx, abbrevDot); t {
		case SentenceNone:
			i = j
		default:
			return t, j + 1
		}
	}
	return SentenceNone, to
}

// spanOffset is the rune offset where token k starts, or end past the
// last token.
func spanOffset(toks []span, k, end int) int {
	if k < len(toks) {
		return toks[k].Start
	}
	return end
}

// classifyStart decides what kind of boundary precedes token nx. It
// returns SentenceNone when there is no boundary at all.
func classifyStart(nx span, abbrevDot bool) SentenceType {
	switch nx.Type {
	case TokenWord:
		r := nx.Text[0]
		switch {
		case unicode.IsDigit(r):
			return SentencePossible
		case unicode.IsUpper(r) && abbrevDot:
			return SentencePossible
		case unicode.IsUpper(r):
			return SentenceProbable
		case abbrevDot:
			return SentenceNone
		}
		return SentenceNoStart
	case TokenPunctuation:
		if isOpener(nx) {
			return SentencePossible
		}
		return SentenceNoStart
	}
	return SentencePossible
}

func isBlankLine(ws []rune) bool {
	n := 0
	for _, r := range ws {
		if r == '\n' {
			n++
		}
	}
	return n >= 2
}

func (e *Engine) segmenter() segmenter {
	return segmenter{tz: e.tokenizer(), abbrevs: e.lex.abbrevs}
}

// NextSentence returns the type of the first sentence boundary of text
// and the length in codepoints up to the start of the next sentence.
func (e *Engine) NextSentence(text string) (SentenceType, int, error) {
	if err := e.ready(); err != nil {
		return SentenceNone, 0, err
	}
	if err := validateInput(text); err != nil {
		return SentenceNone, 0, err
	}
	t, n := e.segmenter().next([]rune(text))
	return t, n, nil
}

// Sentences splits text into sentences whose concatenation is text. The
// last sentence has type SentenceNone.
func (e *Engine) Sentences(text string) ([]Sentence, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(text); err != nil {
		return nil, err
	}
	return e.segmenter().sentences([]rune(text)), nil
}

func (sg segmenter) sentences(text []rune) []Sentence {
	toks := sg.tz.spans(text)
	abbrev := sg.abbreviationDots(toks)
	var out []Sentence
	for from := 0; from < len(toks); {
		t, k := sg.boundary(toks, abbrev, from, len(toks))
		start, end := toks[from].Start, spanOffset(toks, k, len(text))
		out = append(out, Sentence{Type: t, Text: string(text[start:end])})
		from = k
	}
	return out
}

// NextSentence segments with the built-in abbreviations, without a
// dictionary.
func NextSentence(text string) (SentenceType, int, error) {
	if err := validateInput(text); err != nil {
		return SentenceNone, 0, err
	}
	sg := segmenter{abbrevs: newAbbreviations(nil)}
	t, n := sg.next([]rune(text))
	return t, n, nil
}
