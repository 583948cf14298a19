// Package voikko implements a Finnish morphological engine: spell checking,
// suggestions, hyphenation, word analysis, tokenization, sentence
// segmentation and grammar checking over a lexicon compiled into a
// finite-state transducer.
//
// A Lexicon is loaded once from a dictionary package and may be shared by
// any number of engines. An Engine owns its options and its speller cache
// and is meant to be used from one goroutine at a time.
//
//	e, err := voikko.Init("fi", "")
//	if err != nil {
//		return err
//	}
//	defer e.Close()
//	ok, _ := e.Spell("kissammeko")
//
// Offsets and lengths returned by this package are counted in Unicode
// codepoints, never in bytes.
package voikko

import "github.com/npillmayer/schuko/tracing"

// tracer traces to the global tracer selected for key "voikko".
func tracer() tracing.Trace {
	return tracing.Select("voikko")
}
