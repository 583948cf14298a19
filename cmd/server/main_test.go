package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	voikko "github.com/cours-de-latin/voikko"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	e, err := voikko.Init("fi", "")
	if err != nil {
		t.Fatalf("Init(fi): %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return (&server{engine: e}).routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSpellEndpoint(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/spell?word=kissa", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp spellResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Correct || resp.Word != "kissa" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHyphenateEndpoint(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/hyphenate?word=linja-autommeko", "")
	var resp hyphenateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Hyphenated != "lin-ja-au-tom-me-ko" || resp.Pattern != "   - =  -  - - " {
		t.Errorf("response = %+v", resp)
	}
}

func TestBoolParam(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"/api/hyphenate?word=kissa", true},
		{"/api/hyphenate?word=kissa&context=", true},
		{"/api/hyphenate?word=kissa&context=maybe", true},
		{"/api/hyphenate?word=kissa&context=false", false},
		{"/api/hyphenate?word=kissa&context=0", false},
		{"/api/hyphenate?word=kissa&context=true", true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if got := boolParam(r, "context", true); got != tt.want {
			t.Errorf("boolParam(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestGrammarEndpoint(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/grammar", `{"text":"Tämä on on testi."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp []grammarErrorJSON
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 1 || resp[0].Code != 8 || resp[0].Start != 5 || resp[0].Description != "Remove duplicate word." {
		t.Errorf("response = %+v", resp)
	}
}

func TestAnalyzeEndpointNotFound(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/analyze?word=xyz", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/api/spell", "", http.StatusBadRequest},
		{http.MethodPost, "/api/spell?word=kissa", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/tokens", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/tokens", "not json", http.StatusBadRequest},
		{http.MethodGet, "/api/spell?word=%FF", "", http.StatusBadRequest},
		{http.MethodGet, "/api/forms?base=tuntematon", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := do(t, h, tt.method, tt.target, tt.body)
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.target, rec.Code, tt.want)
		}
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" https://a.fi, ,https://b.fi ")
	if len(got) != 2 || got[0] != "https://a.fi" || got[1] != "https://b.fi" {
		t.Errorf("splitOrigins = %v", got)
	}
}
