// Command server exposes the voikko engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/spell?word=<word>
//	GET  /api/suggest?word=<word>
//	GET  /api/hyphenate?word=<word>[&hyphen=-][&context=true]
//	GET  /api/analyze?word=<word>
//	GET  /api/forms?base=<base form>
//	POST /api/tokens      body: {"text":"..."}
//	POST /api/sentences   body: {"text":"..."}
//	POST /api/grammar     body: {"text":"...","language":"en"}
//	GET  /api/dictionaries
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	voikko "github.com/cours-de-latin/voikko"
)

// ---- JSON response types ------------------------------------------------

type spellResponse struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

type suggestResponse struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

type hyphenateResponse struct {
	Word       string `json:"word"`
	Pattern    string `json:"pattern"`
	Hyphenated string `json:"hyphenated"`
}

type analyzeResponse struct {
	Word     string              `json:"word"`
	Analyses []map[string]string `json:"analyses"`
}

type formsResponse struct {
	BaseForm string   `json:"base_form"`
	Forms    []string `json:"forms"`
}

type tokenJSON struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type sentenceJSON struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type grammarErrorJSON struct {
	Code        int      `json:"code"`
	Start       int      `json:"start"`
	Length      int      `json:"length"`
	Suggestions []string `json:"suggestions"`
	Description string   `json:"description"`
}

type dictionaryJSON struct {
	Language    string `json:"language"`
	Script      string `json:"script,omitempty"`
	Variant     string `json:"variant"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

// server serialises access to the engine, which is not safe for
// concurrent use.
type server struct {
	mu     sync.Mutex
	engine *voikko.Engine
	paths  []string
}

func (s *server) with(fn func(e *voikko.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeEngineError maps engine errors to HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, voikko.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("engine call failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func wordParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return "", false
	}
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, "missing '"+name+"' query parameter")
		return "", false
	}
	return v, true
}

type textBody struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// boolParam reads a boolean query parameter, keeping def when it is
// missing or malformed.
func boolParam(r *http.Request, name string, def bool) bool {
	if v, err := strconv.ParseBool(r.URL.Query().Get(name)); err == nil {
		return v
	}
	return def
}

func readText(w http.ResponseWriter, r *http.Request) (textBody, bool) {
	var body textBody
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return body, false
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
		return body, false
	}
	return body, true
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleSpell(w http.ResponseWriter, r *http.Request) {
	word, ok := wordParam(w, r, "word")
	if !ok {
		return
	}
	var correct bool
	err := s.with(func(e *voikko.Engine) (err error) {
		correct, err = e.Spell(word)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spellResponse{Word: word, Correct: correct})
}

func (s *server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	word, ok := wordParam(w, r, "word")
	if !ok {
		return
	}
	var sugg []string
	err := s.with(func(e *voikko.Engine) (err error) {
		sugg, err = e.Suggest(word)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if sugg == nil {
		sugg = []string{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{Word: word, Suggestions: sugg})
}

func (s *server) handleHyphenate(w http.ResponseWriter, r *http.Request) {
	word, ok := wordParam(w, r, "word")
	if !ok {
		return
	}
	hyphen := r.URL.Query().Get("hyphen")
	if hyphen == "" {
		hyphen = "-"
	}
	context := boolParam(r, "context", true)
	var resp hyphenateResponse
	err := s.with(func(e *voikko.Engine) (err error) {
		if resp.Pattern, err = e.HyphenationPattern(word); err != nil {
			return err
		}
		resp.Hyphenated, err = e.Hyphenate(word, hyphen, context)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	resp.Word = word
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	word, ok := wordParam(w, r, "word")
	if !ok {
		return
	}
	var analyses []voikko.Analysis
	err := s.with(func(e *voikko.Engine) (err error) {
		analyses, err = e.AnalyzeWord(word)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	out := make([]map[string]string, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, a.Attributes())
	}
	status := http.StatusOK
	if len(out) == 0 {
		status = http.StatusNotFound
	}
	writeJSON(w, status, analyzeResponse{Word: word, Analyses: out})
}

func (s *server) handleForms(w http.ResponseWriter, r *http.Request) {
	base, ok := wordParam(w, r, "base")
	if !ok {
		return
	}
	var forms []string
	err := s.with(func(e *voikko.Engine) (err error) {
		forms, err = e.InflectedForms(base)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if len(forms) == 0 {
		writeError(w, http.StatusNotFound, "base form "+strconv.Quote(base)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, formsResponse{BaseForm: base, Forms: forms})
}

func (s *server) handleTokens(w http.ResponseWriter, r *http.Request) {
	body, ok := readText(w, r)
	if !ok {
		return
	}
	var toks []voikko.Token
	err := s.with(func(e *voikko.Engine) (err error) {
		toks, err = e.Tokens(body.Text)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	out := make([]tokenJSON, 0, len(toks))
	for _, t := range toks {
		out = append(out, tokenJSON{Type: t.Type.String(), Text: t.Text})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleSentences(w http.ResponseWriter, r *http.Request) {
	body, ok := readText(w, r)
	if !ok {
		return
	}
	var sents []voikko.Sentence
	err := s.with(func(e *voikko.Engine) (err error) {
		sents, err = e.Sentences(body.Text)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	out := make([]sentenceJSON, 0, len(sents))
	for _, st := range sents {
		out = append(out, sentenceJSON{Type: st.Type.String(), Text: st.Text})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	body, ok := readText(w, r)
	if !ok {
		return
	}
	if body.Language == "" {
		body.Language = "en"
	}
	var gerrs []voikko.GrammarError
	err := s.with(func(e *voikko.Engine) (err error) {
		gerrs, err = e.GrammarErrors(body.Text, body.Language)
		return err
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	out := make([]grammarErrorJSON, 0, len(gerrs))
	for _, g := range gerrs {
		sugg := g.Suggestions
		if sugg == nil {
			sugg = []string{}
		}
		out = append(out, grammarErrorJSON{
			Code:        g.Code,
			Start:       g.StartPos,
			Length:      g.Length,
			Suggestions: sugg,
			Description: g.ShortDescription,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleDictionaries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	dicts, err := voikko.ListDictionaries(s.paths...)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	out := make([]dictionaryJSON, 0, len(dicts))
	for _, d := range dicts {
		out = append(out, dictionaryJSON{
			Language:    d.Language,
			Script:      d.Script,
			Variant:     d.Variant,
			Description: d.Description,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/spell", s.handleSpell)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/hyphenate", s.handleHyphenate)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/forms", s.handleForms)
	mux.HandleFunc("/api/tokens", s.handleTokens)
	mux.HandleFunc("/api/sentences", s.handleSentences)
	mux.HandleFunc("/api/grammar", s.handleGrammar)
	mux.HandleFunc("/api/dictionaries", s.handleDictionaries)
	return mux
}

// ---- main ---------------------------------------------------------------

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func main() {
	lang := flag.String("lang", "fi", "dictionary language tag")
	path := flag.String("path", "", "extra dictionary search path")
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("origins", "*", "comma-separated allowed CORS origins")
	flag.Parse()

	log.Info().Str("lang", *lang).Str("path", *path).Msg("loading dictionary")
	engine, err := voikko.Init(*lang, *path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	defer engine.Close()
	if d, err := engine.Dictionary(); err == nil {
		log.Info().Str("dictionary", d.Tag()).Str("description", d.Description).Msg("dictionary loaded")
	}

	s := &server{engine: engine}
	if *path != "" {
		s.paths = []string{*path}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(*origins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(s.routes())

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
