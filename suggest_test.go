package voikko

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	e := newTestEngine(t)
	sugg, err := e.Suggest("sydämmeeni")
	require.NoError(t, err)
	require.NotEmpty(t, sugg)
	assert.Equal(t, "sydämeeni", sugg[0])
	assert.Contains(t, sugg, "sydänmeemi")
	assert.LessOrEqual(t, len(sugg), maxSuggestions)
}

func TestSuggestDetailed(t *testing.T) {
	e := newTestEngine(t)
	sugg, err := e.SuggestDetailed("sydämmeeni")
	require.NoError(t, err)
	require.NotEmpty(t, sugg)
	assert.Equal(t, Suggestion{Word: "sydämeeni", Cost: costNear, Distance: 1}, sugg[0])
	for i := 1; i < len(sugg); i++ {
		assert.LessOrEqual(t, sugg[i-1].Cost, sugg[i].Cost)
	}
}

func TestSuggestCaseOnly(t *testing.T) {
	e := newTestEngine(t)
	sugg, err := e.SuggestDetailed("helsinki")
	require.NoError(t, err)
	require.NotEmpty(t, sugg)
	assert.Equal(t, "Helsinki", sugg[0].Word)
	assert.Equal(t, 0, sugg[0].Cost)
}

func TestSuggestCorrectWord(t *testing.T) {
	e := newTestEngine(t)
	for _, w := range []string{"kissa", "Helsinki", "", "https://example.com"} {
		sugg, err := e.Suggest(w)
		require.NoError(t, err)
		assert.Empty(t, sugg, w)
	}
}

func TestSuggestNoLetters(t *testing.T) {
	e := newTestEngine(t)
	for _, w := range []string{".", "-", "--", "123", "?!"} {
		sugg, err := e.Suggest(w)
		require.NoError(t, err)
		assert.Empty(t, sugg, w)
	}
}

func TestSuggestLongWord(t *testing.T) {
	e := newTestEngine(t)
	word := strings.Repeat("talo", 63) + "x"

	start := time.Now()
	sugg, err := e.SuggestDetailed(word)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.LessOrEqual(t, len(sugg), 5)
}

func TestSuggestProperties(t *testing.T) {
	e := newTestEngine(t)
	uu := map[string]struct {
		word, want string
	}{
		"doubled letter":  {"kisa", "kissa"},
		"transposition":   {"koria", "koira"},
		"first uppercase": {"Kisa", "Kissa"},
		"all uppercase":   {"KISA", "KISSA"},
		"split words":     {"kissaja", "kissa ja"},
		"front vowel":     {"kissä", "kissa"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			sugg, err := e.Suggest(u.word)
			require.NoError(t, err)
			assert.Contains(t, sugg, u.want)
			assert.NotContains(t, sugg, u.word)
			for _, s := range sugg {
				ok, err := e.spellWords(s)
				require.NoError(t, err)
				assert.True(t, ok, s)
			}
		})
	}
}

func TestConfusionTable(t *testing.T) {
	assert.True(t, typingConfusions.near('a', 'ä'))
	assert.True(t, typingConfusions.near('k', 'g'))
	assert.False(t, typingConfusions.near('a', 'k'))
	assert.False(t, typingConfusions.near('x', 'x'))
	assert.True(t, ocrConfusions.near('l', '1'))
}
