package voikko

import (
	"strings"
	"unicode"
)

// TokenType classifies a token.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenWord
	TokenPunctuation
	TokenWhitespace
	TokenUnknown
)

func (t TokenType) String() string {
	switch t {
	case TokenWord:
		return "WORD"
	case TokenPunctuation:
		return "PUNCTUATION"
	case TokenWhitespace:
		return "WHITESPACE"
	case TokenUnknown:
		return "UNKNOWN"
	}
	return "NONE"
}

// Token is a piece of text with its type.
type Token struct {
	Type TokenType
	Text string
}

// tokenizer splits text into tokens. alphabet adds letters outside the
// Latin, Greek and Cyrillic scripts to the word characters.
type tokenizer struct {
	alphabet string
}

func (tz tokenizer) isWordRune(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
		return false
	}
	if unicode.In(r, unicode.Latin, unicode.Greek, unicode.Cyrillic, unicode.Mn) {
		return true
	}
	return strings.ContainsRune(tz.alphabet, unicode.ToLower(r))
}

// isInnerRune reports runes allowed inside a word between word runes.
func isInnerRune(prev, r, next rune) bool {
	switch r {
	case '-', '\'', '\u2019', ':', '\u00ad':
		return true
	case '.', ',':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	}
	return false
}

func isPunctuationRune(r rune) bool {
	if unicode.IsPunct(r) {
		return true
	}
	return unicode.IsSymbol(r) && (r <= unicode.MaxLatin1 || r == '€')
}

// next returns the type and length in runes of the token at the start of
// text. Empty input yields TokenNone with length 0.
func (tz tokenizer) next(text []rune) (TokenType, int) {
	if len(text) == 0 {
		return TokenNone, 0
	}
	r := text[0]
	switch {
	case tz.isWordRune(r):
		n := 1
		for n < len(text) {
			switch {
			case tz.isWordRune(text[n]):
				n++
			case n+1 < len(text) && tz.isWordRune(text[n+1]) && isInnerRune(text[n-1], text[n], text[n+1]):
				n += 2
			default:
				return TokenWord, n
			}
		}
		return TokenWord, n
	case unicode.IsSpace(r):
		n := 1
		for n < len(text) && unicode.IsSpace(text[n]) {
			n++
		}
		return TokenWhitespace, n
	case isPunctuationRune(r):
		return TokenPunctuation, 1
	}
	return TokenUnknown, 1
}

// span is a token with its position in runes.
type span struct {
	Type  TokenType
	Text  []rune
	Start int
}

func (s span) end() int { return s.Start + len(s.Text) }

func (s span) is(r rune) bool {
	return s.Type == TokenPunctuation && len(s.Text) == 1 && s.Text[0] == r
}

func (tz tokenizer) spans(text []rune) []span {
	var out []span
	pos := 0
	for pos < len(text) {
		t, n := tz.next(text[pos:])
		out = append(out, span{Type: t, Text: text[pos : pos+n], Start: pos})
		pos += n
	}
	return out
}

func (e *Engine) tokenizer() tokenizer {
	return tokenizer{alphabet: e.lex.alphabet}
}

// NextToken returns the type and length in codepoints of the first token
// of text.
func (e *Engine) NextToken(text string) (TokenType, int, error) {
	if err := e.ready(); err != nil {
		return TokenNone, 0, err
	}
	if err := validateInput(text); err != nil {
		return TokenNone, 0, err
	}
	t, n := e.tokenizer().next([]rune(text))
	return t, n, nil
}

// Tokens splits text into tokens whose concatenation is text.
func (e *Engine) Tokens(text string) ([]Token, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(text); err != nil {
		return nil, err
	}
	spans := e.tokenizer().spans([]rune(text))
	out := make([]Token, len(spans))
	for i, s := range spans {
		out[i] = Token{Type: s.Type, Text: string(s.Text)}
	}
	return out, nil
}

// NextToken tokenizes with the default alphabet, without a dictionary.
func NextToken(text string) (TokenType, int, error) {
	if err := validateInput(text); err != nil {
		return TokenNone, 0, err
	}
	t, n := tokenizer{}.next([]rune(text))
	return t, n, nil
}
