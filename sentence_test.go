package voikko

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	e := newTestEngine(t)
	sents, err := e.Sentences("Tämä on ensimmäinen lause. Tämä on toinen lause.")
	require.NoError(t, err)
	assert.Equal(t, []Sentence{
		{SentenceProbable, "Tämä on ensimmäinen lause. "},
		{SentenceNone, "Tämä on toinen lause."},
	}, sents)
}

func TestSentencesLongText(t *testing.T) {
	e := newTestEngine(t)
	const n = 4000
	text := strings.Repeat("Tämä on testi. ", n)

	start := time.Now()
	sents, err := e.Sentences(text)
	require.NoError(t, err)
	errs, err := e.GrammarErrors(text, "en")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	require.Len(t, sents, n)
	assert.Equal(t, SentenceProbable, sents[0].Type)
	assert.Equal(t, Sentence{SentenceNone, "Tämä on testi. "}, sents[n-1])
	assert.Empty(t, errs)
}

func TestNextSentence(t *testing.T) {
	e := newTestEngine(t)
	uu := map[string]struct {
		text string
		typ  SentenceType
		n    int
	}{
		"empty":              {"", SentenceNone, 0},
		"single":             {"Tämä on lause.", SentenceNone, 14},
		"probable":           {"Se tuli. Hän meni.", SentenceProbable, 9},
		"abbreviation upper": {"Katso esim. Helsinki on iso.", SentencePossible, 12},
		"abbreviation lower": {"Katso esim. kissa on iso.", SentenceNone, 25},
		"lower after dot":    {"Se oli hyvä. kissa tuli.", SentenceNoStart, 13},
		"digit":              {"Luku 1. 2 on luku.", SentencePossible, 8},
		"question":           {"Tuletko? Tulen.", SentenceProbable, 9},
		"quoted":             {"Hän sanoi: \"Tule!\" Sitten hän meni.", SentenceProbable, 19},
		"opener":             {"Se oli siinä. \"Hyvä\", hän sanoi.", SentencePossible, 14},
		"blank line":         {"Otsikko\n\nTeksti alkaa.", SentenceProbable, 9},
		"ellipsis":           {"Niin… Ehkä.", SentenceProbable, 6},
		"no space":           {"Arvo oli 3.5 tai enemmän", SentenceNone, 24},
		"dotted abbrev":      {"Katso e.g. Matti on.", SentencePossible, 11},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			typ, n, err := e.NextSentence(u.text)
			require.NoError(t, err)
			assert.Equal(t, u.typ, typ)
			assert.Equal(t, u.n, n)
		})
	}
}

func TestNextSentenceWithoutDictionary(t *testing.T) {
	typ, n, err := NextSentence("Hyvä on. Mennään.")
	require.NoError(t, err)
	assert.Equal(t, SentenceProbable, typ)
	assert.Equal(t, 9, n)

	_, _, err = NextSentence("\xff")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSentenceTypeString(t *testing.T) {
	assert.Equal(t, "PROBABLE", SentenceProbable.String())
	assert.Equal(t, "NO_START", SentenceNoStart.String())
	assert.Equal(t, "NONE", SentenceNone.String())
}

func FuzzSentences(f *testing.F) {
	for _, s := range []string{
		"Tämä on ensimmäinen lause. Tämä on toinen lause.",
		"Katso esim. kissa. Se on jne. Iso!\n\nUusi kappale",
		"?! ... \"\" (a.) 1. 2.",
		"",
	} {
		f.Add(s)
	}
	e := newTestEngine(f)
	f.Fuzz(func(t *testing.T, text string) {
		sents, err := e.Sentences(text)
		if !utf8.ValidString(text) || strings.IndexByte(text, 0) >= 0 {
			require.Error(t, err)
			return
		}
		require.NoError(t, err)
		var b strings.Builder
		for i, s := range sents {
			require.NotEmpty(t, s.Text)
			if i < len(sents)-1 {
				require.NotEqual(t, SentenceNone, s.Type)
			} else {
				require.Equal(t, SentenceNone, s.Type)
			}
			b.WriteString(s.Text)
		}
		require.Equal(t, text, b.String())
	})
}
