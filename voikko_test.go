package voikko

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

var (
	lexOnce sync.Once
	testLex *Lexicon
	lexErr  error
)

// sharedLexicon loads the bundled dictionary once per test binary.
func sharedLexicon(t testing.TB) *Lexicon {
	t.Helper()
	lexOnce.Do(func() {
		testLex, lexErr = LoadLexicon("fi")
	})
	if lexErr != nil {
		t.Fatalf("LoadLexicon(fi): %v", lexErr)
	}
	return testLex
}

func newTestEngine(t testing.TB) *Engine {
	t.Helper()
	e, err := NewWithLexicon(sharedLexicon(t), DefaultOptions())
	if err != nil {
		t.Fatalf("NewWithLexicon: %v", err)
	}
	return e
}

func TestInit(t *testing.T) {
	e, err := Init("fi", "")
	if err != nil {
		t.Fatalf("Init(fi): %v", err)
	}
	defer e.Close()
	d, err := e.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary: %v", err)
	}
	if d.Language != "fi" || d.Variant != "standard" {
		t.Errorf("Dictionary() = %+v, want fi/standard", d)
	}
	lex := e.Lexicon()
	t.Logf("Loaded %d lemmas, %d classes, %d states",
		len(lex.lemmas), len(lex.classes), len(lex.fst.states))
}

func TestInitUnknownLanguage(t *testing.T) {
	_, err := Init("xy", "")
	if !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("Init(xy) error = %v, want ErrVariantNotFound", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Language != "xy" {
		t.Errorf("Init(xy) error = %#v, want *LoadError for xy", err)
	}
	if !strings.Contains(err.Error(), "specified dictionary variant was not found") {
		t.Errorf("Init(xy) message = %q", err.Error())
	}
}

func TestClose(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := e.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
	if _, err := e.Spell("kissa"); !errors.Is(err, ErrClosed) {
		t.Errorf("Spell after Close = %v, want ErrClosed", err)
	}
	if _, err := e.Tokens("kissa"); !errors.Is(err, ErrClosed) {
		t.Errorf("Tokens after Close = %v, want ErrClosed", err)
	}
	// The shared lexicon survives the engine.
	if as, _ := sharedLexicon(t).analyze("kissa"); len(as) == 0 {
		t.Error("lexicon unusable after engine Close")
	}
}

func TestAnalyzeWordKissammeko(t *testing.T) {
	e := newTestEngine(t)
	as, err := e.AnalyzeWord("kissammeko")
	if err != nil {
		t.Fatalf("AnalyzeWord: %v", err)
	}
	if len(as) == 0 {
		t.Fatal("AnalyzeWord('kissammeko') returned no results")
	}
	a := as[0]
	if a.BaseForm != "kissa" || a.Class != ClassNoun || a.Structure != "=pppppppppp" {
		t.Errorf("kissammeko = %+v", a)
	}
	if a.Case != "nimento" || a.Number != "singular" {
		t.Errorf("kissammeko case/number = %q/%q", a.Case, a.Number)
	}
	if a.Possessive != "1p" || a.QuestionClitic != "true" {
		t.Errorf("kissammeko possessive/clitic = %q/%q", a.Possessive, a.QuestionClitic)
	}
	if a.WordBases != "+kissa(kissa)" {
		t.Errorf("kissammeko word bases = %q", a.WordBases)
	}
	if !strings.HasPrefix(a.FSTOutput, "[Lnimisana]kissa") {
		t.Errorf("kissammeko fst output = %q", a.FSTOutput)
	}
	for _, a := range as {
		if a.BaseForm != "kissa" {
			t.Errorf("unexpected reading %+v", a)
		}
	}
}

func TestAnalyzeWordAmbiguous(t *testing.T) {
	e := newTestEngine(t)
	as, err := e.AnalyzeWord("olin")
	if err != nil {
		t.Fatalf("AnalyzeWord: %v", err)
	}
	var bases []string
	for _, a := range as {
		bases = append(bases, a.BaseForm)
	}
	if strings.Join(bases, ",") != "olka,olla" {
		t.Errorf("olin base forms = %v, want [olka olla]", bases)
	}
	if as[1].Tense != "past_imperfective" || as[1].Person != "1" {
		t.Errorf("olin as olla = %+v", as[1])
	}
}

func TestAnalyzeWordCompound(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		word, base, structure, bases string
	}{
		{"linja-auto", "linja-auto", "=ppppp-=pppp", "+linja(linja)+-+auto(auto)"},
		{"sydänmeemi", "sydänmeemi", "=ppppp=ppppp", "+sydän(sydän)+meemi(meemi)"},
	}
	for _, tt := range tests {
		as, err := e.AnalyzeWord(tt.word)
		if err != nil || len(as) == 0 {
			t.Errorf("AnalyzeWord(%q) = %v, %v", tt.word, as, err)
			continue
		}
		a := as[0]
		if a.BaseForm != tt.base || a.Structure != tt.structure || a.WordBases != tt.bases {
			t.Errorf("AnalyzeWord(%q) = base %q structure %q bases %q", tt.word, a.BaseForm, a.Structure, a.WordBases)
		}
	}
}

func TestAnalyzeWordNotFound(t *testing.T) {
	e := newTestEngine(t)
	for _, w := range []string{"xyz", "", strings.Repeat("kissa", 60)} {
		as, err := e.AnalyzeWord(w)
		if err != nil {
			t.Errorf("AnalyzeWord(%q): %v", w, err)
		}
		if len(as) != 0 {
			t.Errorf("AnalyzeWord(%q) = %v, want none", w, as)
		}
	}
}

func TestAnalyzeWordIdempotent(t *testing.T) {
	e := newTestEngine(t)
	for _, w := range []string{"kissammeko", "olin", "Helsingissä", "linja-autommeko"} {
		a1, _ := e.AnalyzeWord(w)
		a2, _ := e.AnalyzeWord(w)
		if len(a1) != len(a2) {
			t.Fatalf("%s: %d then %d analyses", w, len(a1), len(a2))
		}
		for i := range a1 {
			if a1[i].Structure != a2[i].Structure || a1[i].BaseForm != a2[i].BaseForm {
				t.Errorf("%s: analysis %d differs", w, i)
			}
		}
	}
}

func TestInvalidInput(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		in     string
		reason string
	}{
		{"\xf6\xf6\xf6", "input must be UTF-8 encoded"},
		{"kis\x00sa", "input must not contain NUL characters"},
	}
	for _, tt := range tests {
		_, err := e.AnalyzeWord(tt.in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("AnalyzeWord(%q) error = %v, want ErrInvalidInput", tt.in, err)
			continue
		}
		if err.Error() != tt.reason {
			t.Errorf("AnalyzeWord(%q) error = %q, want %q", tt.in, err.Error(), tt.reason)
		}
		if _, err := e.Spell(tt.in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Spell(%q) error = %v", tt.in, err)
		}
		if _, err := e.GrammarErrors(tt.in, "en"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("GrammarErrors(%q) error = %v", tt.in, err)
		}
	}
	// The engine stays usable.
	if ok, err := e.Spell("kissa"); !ok || err != nil {
		t.Errorf("Spell(kissa) after invalid input = %v, %v", ok, err)
	}
}

func TestInflectedForms(t *testing.T) {
	e := newTestEngine(t)
	forms, err := e.InflectedForms("kissa")
	if err != nil {
		t.Fatalf("InflectedForms: %v", err)
	}
	t.Logf("kissa has %d forms", len(forms))
	have := make(map[string]bool, len(forms))
	for _, f := range forms {
		if have[f] {
			t.Errorf("form %q listed twice", f)
		}
		have[f] = true
		if strings.Contains(f, "-") {
			t.Errorf("form %q follows a compound continuation", f)
		}
	}
	for _, want := range []string{"kissa", "kissan", "kissassa", "kissoissa", "kissammeko", "kissakin"} {
		if !have[want] {
			t.Errorf("InflectedForms(kissa) is missing %q", want)
		}
	}
	for _, f := range forms {
		if ok, _ := e.Spell(f); !ok {
			t.Errorf("generated form %q does not spell", f)
		}
	}
	if forms, _ := e.InflectedForms("tuntematon"); len(forms) != 0 {
		t.Errorf("InflectedForms(tuntematon) = %v", forms)
	}
}
