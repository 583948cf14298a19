package voikko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarErrors(t *testing.T) {
	e := newTestEngine(t)
	errs, err := e.GrammarErrors("Tämä on on testi.", "en")
	require.NoError(t, err)
	assert.Equal(t, []GrammarError{{
		Code:             GCRepeatingWord,
		StartPos:         5,
		Length:           5,
		Suggestions:      []string{"on"},
		ShortDescription: "Remove duplicate word.",
	}}, errs)
}

func TestGrammarErrorsWordRun(t *testing.T) {
	e := newTestEngine(t)
	errs, err := e.GrammarErrors("Tämä on on on testi.", "en")
	require.NoError(t, err)
	require.Len(t, errs, 2)
	for i, start := range []int{5, 8} {
		assert.Equal(t, GCRepeatingWord, errs[i].Code)
		assert.Equal(t, start, errs[i].StartPos)
		assert.Equal(t, 5, errs[i].Length)
	}
}

func TestGrammarErrorRules(t *testing.T) {
	e := newTestEngine(t)
	uu := map[string]struct {
		text        string
		code        int
		start, n    int
		suggestions []string
	}{
		"extra whitespace":    {"Tämä  on testi.", GCExtraWhitespace, 4, 2, []string{" "}},
		"space before dot":    {"Tämä on testi .", GCSpaceBeforePunctuation, 13, 2, []string{"."}},
		"extra comma":         {"Kissa, , koira.", GCExtraComma, 5, 3, []string{","}},
		"lower case start":    {"tämä on testi.", GCWriteFirstUppercase, 0, 4, []string{"Tämä"}},
		"lower after opener":  {"Tämä on testi. \"tämä\" on toinen.", GCWriteFirstUppercase, 16, 4, []string{"Tämä"}},
		"repeating word":      {"Kissa kissa on.", GCRepeatingWord, 0, 11, []string{"kissa"}},
		"missing terminator":  {"Tämä on testi", GCTerminatingPunctuationMissing, 8, 5, nil},
		"negative verb":       {"Hän ei sanoo.", GCNegativeVerbMismatch, 4, 8, nil},
		"second paragraph ok": {"Tämä on testi\n\nToinen on testi.", GCTerminatingPunctuationMissing, 8, 5, nil},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			errs, err := e.GrammarErrors(u.text, "en")
			require.NoError(t, err)
			require.Len(t, errs, 1, "%+v", errs)
			g := errs[0]
			assert.Equal(t, u.code, g.Code)
			assert.Equal(t, u.start, g.StartPos)
			assert.Equal(t, u.n, g.Length)
			assert.Equal(t, u.suggestions, g.Suggestions)
			assert.Equal(t, GrammarErrorDescription(u.code, "en"), g.ShortDescription)
		})
	}
}

func TestGrammarErrorsClean(t *testing.T) {
	e := newTestEngine(t)
	for _, text := range []string{
		"",
		"Tämä on testi.",
		"Hän ei sano.",
		"Se on 1 1 kissa.",
		"Tämä on ensimmäinen lause. Tämä on toinen lause.",
		"Katso esim. kissa on iso.",
	} {
		errs, err := e.GrammarErrors(text, "en")
		require.NoError(t, err)
		assert.Empty(t, errs, text)
	}
}

func TestGrammarErrorsOrder(t *testing.T) {
	e := newTestEngine(t)
	errs, err := e.GrammarErrors("tämä  on on testi", "en")
	require.NoError(t, err)
	var codes, starts []int
	for _, g := range errs {
		codes = append(codes, g.Code)
		starts = append(starts, g.StartPos)
	}
	assert.Equal(t, []int{GCWriteFirstUppercase, GCExtraWhitespace, GCRepeatingWord, GCTerminatingPunctuationMissing}, codes)
	assert.Equal(t, []int{0, 4, 6, 12}, starts)
}

func TestGrammarOptions(t *testing.T) {
	uu := map[string]struct {
		opt  BoolOption
		text string
	}{
		"titles":         {OptAcceptTitlesInGc, "Otsikko\n\nTämä on testi."},
		"unfinished":     {OptAcceptUnfinishedParagraphsInGc, "Tämä on testi"},
		"bulleted lists": {OptAcceptBulletedListsInGc, "kissa"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			e := newTestEngine(t)
			errs, err := e.GrammarErrors(u.text, "en")
			require.NoError(t, err)
			require.NotEmpty(t, errs)

			require.NoError(t, e.SetBoolOption(u.opt, true))
			errs, err = e.GrammarErrors(u.text, "en")
			require.NoError(t, err)
			assert.Empty(t, errs)
		})
	}
}

func TestGrammarErrorLanguage(t *testing.T) {
	e := newTestEngine(t)
	errs, err := e.GrammarErrors("Tämä on on testi.", "fi-FI")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Poista toistuva sana.", errs[0].ShortDescription)

	assert.Equal(t, "Remove duplicate word.", GrammarErrorDescription(GCRepeatingWord, "xx"))
	assert.Equal(t, "Remove duplicate word.", GrammarErrorDescription(GCRepeatingWord, ""))
}

func TestNextGrammarError(t *testing.T) {
	e := newTestEngine(t)
	g, ok, err := e.NextGrammarError("Tämä on on testi.", "en", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, GCRepeatingWord, g.Code)

	_, ok, err = e.NextGrammarError("Tämä on on testi.", "en", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	text := "tämä  on on testi"
	all, err := e.GrammarErrors(text, "en")
	require.NoError(t, err)
	for i, want := range all {
		g, ok, err := e.NextGrammarError(text, "en", i)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, g)
	}

	_, _, err = e.NextGrammarError("\xff", "en", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
