package voikko

import (
	"sort"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"
)

const (
	maxSuggestions    = 5
	maxSuggestionCost = 4

	costNear      = 1 // substitution within a confusion class, doubled letter
	costEdit      = 2 // any other insertion, deletion, substitution or swap
	costSplitWord = 3 // a space inserted between two correct words
)

// Suggestion is a correction candidate with its ranking cost and its
// plain edit distance to the input.
type Suggestion struct {
	Word     string
	Cost     int
	Distance int
}

// confusionTable maps a rune to its confusion class.
type confusionTable map[rune]int

func newConfusionTable(classes ...string) confusionTable {
	t := make(confusionTable)
	for i, c := range classes {
		for _, r := range c {
			t[r] = i + 1
		}
	}
	return t
}

func (t confusionTable) near(a, b rune) bool {
	ca, ok := t[a]
	return ok && ca == t[b]
}

// typingConfusions groups letters commonly confused when typing Finnish.
var typingConfusions = newConfusionTable(
	"aä", "oö", "uy", "ei", "td", "kgc", "pb", "mn", "sšz", "zž", "vw", "jh",
)

// ocrConfusions groups characters commonly confused by text recognition.
var ocrConfusions = newConfusionTable(
	"il1|!", "o0ö", "s5", "b8", "ce", "aäå", "uü", "z2", "g9q",
)

// Suggest returns up to five corrections for a misspelled word, best
// first. A correctly spelled word has none.
func (e *Engine) Suggest(word string) ([]string, error) {
	sugs, err := e.SuggestDetailed(word)
	if err != nil || len(sugs) == 0 {
		return nil, err
	}
	out := make([]string, len(sugs))
	for i, s := range sugs {
		out[i] = s.Word
	}
	return out, nil
}

// SuggestDetailed is Suggest with the cost and the OSA edit distance of
// every candidate.
func (e *Engine) SuggestDetailed(word string) ([]Suggestion, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(word); err != nil {
		return nil, err
	}
	n := utf8.RuneCountInString(word)
	if n == 0 || n > MaxWordChars {
		return nil, nil
	}
	casing := wordCasing([]rune(word))
	if casing == caseNoLetters {
		return nil, nil
	}
	if ok, err := e.spell(word); ok || err != nil {
		return nil, err
	}

	table := typingConfusions
	if e.opts.OCRSuggestions {
		table = ocrConfusions
	}
	s := newSuggestionSearch(e.lex.fst, strings.ToLower(word), table)
	if err := s.run(); err != nil {
		return nil, err
	}
	if err := e.addSplitCandidates(s.found, word); err != nil {
		return nil, err
	}

	type candidate struct {
		word string
		cost int
	}
	cands := make([]candidate, 0, len(s.found))
	for w, c := range s.found {
		cands = append(cands, candidate{w, c})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].cost != cands[j].cost {
			return cands[i].cost < cands[j].cost
		}
		return cands[i].word < cands[j].word
	})

	seen := mapset.NewThreadUnsafeSet[string](word)
	var out []Suggestion
	for _, c := range cands {
		if len(out) == maxSuggestions {
			break
		}
		w := c.word
		if casing == caseAllUpper || casing == caseFirstUpper {
			w = applyCasing(w, casing)
		}
		if !seen.Add(w) {
			continue
		}
		ok, err := e.spellWords(w)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, Suggestion{
			Word:     w,
			Cost:     c.cost,
			Distance: edlib.OSADamerauLevenshteinDistance(word, w),
		})
	}
	return out, nil
}

// addSplitCandidates proposes "a b" for input ab when a and b both spell.
func (e *Engine) addSplitCandidates(found map[string]int, word string) error {
	rs := []rune(strings.ToLower(word))
	for i := 2; i <= len(rs)-2; i++ {
		left, right := string(rs[:i]), string(rs[i:])
		ok, err := e.spell(left)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if ok, err = e.spell(right); err != nil {
			return err
		}
		if ok {
			addCandidate(found, left+" "+right, costSplitWord)
		}
	}
	return nil
}

// spellWords checks every space-separated word of w.
func (e *Engine) spellWords(w string) (bool, error) {
	for _, part := range strings.Fields(w) {
		ok, err := e.spell(part)
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func addCandidate(found map[string]int, w string, cost int) {
	if c, ok := found[w]; !ok || cost < c {
		found[w] = cost
	}
}

// suggestionSearch is a bounded weighted edit search over the transducer:
// it walks the paths whose surface is within maxSuggestionCost of the
// input and records the accepted surfaces.
type suggestionSearch struct {
	t     *transducer
	in    []rune
	table confusionTable
	// memo holds the completions of every finished search state.
	memo   map[searchKey]completions
	active map[searchKey]bool
	found  map[string]int
}

// searchKey identifies a search state. last is the previous output
// letter, folded, since it prices the next insertion.
type searchKey struct {
	state   int32
	pos     int
	pending rune
	last    rune
}

// completions maps the accepted suffixes reachable from a search state to
// their lowest costs. It holds every suffix costing at most budget.
type completions struct {
	budget   int
	suffixes map[string]int
}

func newSuggestionSearch(t *transducer, folded string, table confusionTable) *suggestionSearch {
	return &suggestionSearch{
		t:      t,
		in:     []rune(folded),
		table:  table,
		memo:   make(map[searchKey]completions),
		active: make(map[searchKey]bool),
		found:  make(map[string]int),
	}
}

func (s *suggestionSearch) run() error {
	suffixes, err := s.dfs(s.t.root, 0, maxSuggestionCost, 0, 0, 0)
	if err != nil {
		return err
	}
	mergeSuffixes(s.found, "", 0, maxSuggestionCost, suffixes)
	return nil
}

// mergeSuffixes adds prefix+suffix to out for every suffix whose cost
// plus step stays within budget.
func mergeSuffixes(out map[string]int, prefix string, step, budget int, suffixes map[string]int) {
	for suffix, c := range suffixes {
		if c += step; c <= budget {
			addCandidate(out, prefix+suffix, c)
		}
	}
}

// dfs returns the accepted suffixes from state at input position pos that
// cost at most budget. A non-zero pending rune is the input rune still
// owed by a transposition in progress.
func (s *suggestionSearch) dfs(state int32, pos, budget, depth int, pending, last rune) (map[string]int, error) {
	if budget < 0 {
		return nil, nil
	}
	key := searchKey{state, pos, pending, last}
	if m, ok := s.memo[key]; ok && m.budget >= budget {
		return m.suffixes, nil
	}
	if s.active[key] {
		return s.expand(state, pos, budget, depth, pending, last)
	}
	s.active[key] = true
	suffixes, err := s.expand(state, pos, budget, depth, pending, last)
	delete(s.active, key)
	if err != nil {
		return nil, err
	}
	s.memo[key] = completions{budget: budget, suffixes: suffixes}
	return suffixes, nil
}

func (s *suggestionSearch) expand(state int32, pos, budget, depth int, pending, last rune) (map[string]int, error) {
	out := make(map[string]int)
	if state == s.t.final {
		if pos == len(s.in) && pending == 0 {
			out[""] = 0
		}
		return out, nil
	}

	st := &s.t.states[state]
	for _, a := range st.eps {
		if depth >= maxEpsilonDepth {
			return nil, errEpsilonDepth
		}
		sub, err := s.dfs(a.to, pos, budget, depth+1, pending, last)
		if err != nil {
			return nil, err
		}
		mergeSuffixes(out, "", 0, budget, sub)
	}

	for _, a := range st.labels {
		l := foldRune(a.label)
		if pending != 0 {
			if l == pending {
				if err := s.follow(out, a, pos, 0, budget, 0); err != nil {
					return nil, err
				}
			}
			continue
		}
		if pos < len(s.in) {
			c := s.in[pos]
			step := 0
			if l != c {
				step = costEdit
				if s.table.near(l, c) {
					step = costNear
				}
			}
			// match or substitution
			if err := s.follow(out, a, pos+1, step, budget, 0); err != nil {
				return nil, err
			}
			// transposition: take in[pos+1] now, owe in[pos]
			if pos+1 < len(s.in) && l == s.in[pos+1] && l != c {
				if err := s.follow(out, a, pos+2, costEdit, budget, c); err != nil {
					return nil, err
				}
			}
		}
		// insertion of a letter missing from the input
		step := costEdit
		if last == l {
			step = costNear
		}
		if err := s.follow(out, a, pos, step, budget, 0); err != nil {
			return nil, err
		}
	}

	// deletion of an extra input letter
	if pending == 0 && pos < len(s.in) {
		step := costEdit
		if pos > 0 && s.in[pos-1] == s.in[pos] {
			step = costNear
		}
		sub, err := s.dfs(state, pos+1, budget-step, depth, 0, last)
		if err != nil {
			return nil, err
		}
		mergeSuffixes(out, "", step, budget, sub)
	}
	return out, nil
}

// follow takes arc a at cost step and merges the suffixes found behind it.
func (s *suggestionSearch) follow(out map[string]int, a arc, pos, step, budget int, pending rune) error {
	if step > budget {
		return nil
	}
	sub, err := s.dfs(a.to, pos, budget-step, 0, pending, foldRune(a.label))
	if err != nil {
		return err
	}
	mergeSuffixes(out, string(a.label), step, budget, sub)
	return nil
}
