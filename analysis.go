package voikko

import (
	"sort"
	"strings"
)

// Attribute names, as reported by Analysis.Attributes.
const (
	AttrBaseForm       = "BASEFORM"
	AttrClass          = "CLASS"
	AttrStructure      = "STRUCTURE"
	AttrFSTOutput      = "FSTOUTPUT"
	AttrNumber         = "NUMBER"
	AttrPerson         = "PERSON"
	AttrMood           = "MOOD"
	AttrTense          = "TENSE"
	AttrNegative       = "NEGATIVE"
	AttrParticiple     = "PARTICIPLE"
	AttrPossessive     = "POSSESSIVE"
	AttrComparison     = "COMPARISON"
	AttrCase           = "SIJAMUOTO"
	AttrQuestionClitic = "KYSYMYSLIITE"
	AttrFocus          = "FOCUS"
	AttrWordBases      = "WORDBASES"
)

// Analysis is one morphological reading of a word. Empty fields are
// absent from the reading.
type Analysis struct {
	BaseForm string
	// Class is the word class of the last compound part, e.g. "nimisana".
	Class string
	// Structure marks compound parts with '=', hyphens with '-' and the
	// standard case of each letter with p/q (lower) or i/j (upper).
	Structure  string
	FSTOutput  string
	Number     string
	Person     string
	Mood       string
	Tense      string
	Negative   string
	Participle string
	Possessive string
	Comparison string
	// Case is the grammatical case (sijamuoto).
	Case string
	// QuestionClitic is "true" when the word carries -ko/-kö.
	QuestionClitic string
	Focus          string
	WordBases      string
	// Extra holds attributes this struct has no field for.
	Extra map[string]string
}

// field returns a pointer to the field holding the named attribute, or
// nil when the attribute goes to Extra.
func (a *Analysis) field(key string) *string {
	switch strings.ToUpper(key) {
	case AttrBaseForm:
		return &a.BaseForm
	case AttrClass:
		return &a.Class
	case AttrStructure:
		return &a.Structure
	case AttrFSTOutput:
		return &a.FSTOutput
	case AttrNumber:
		return &a.Number
	case AttrPerson:
		return &a.Person
	case AttrMood:
		return &a.Mood
	case AttrTense:
		return &a.Tense
	case AttrNegative:
		return &a.Negative
	case AttrParticiple:
		return &a.Participle
	case AttrPossessive:
		return &a.Possessive
	case AttrComparison:
		return &a.Comparison
	case AttrCase:
		return &a.Case
	case AttrQuestionClitic:
		return &a.QuestionClitic
	case AttrFocus:
		return &a.Focus
	case AttrWordBases:
		return &a.WordBases
	}
	return nil
}

func (a *Analysis) set(key, value string) {
	if f := a.field(key); f != nil {
		*f = value
		return
	}
	if a.Extra == nil {
		a.Extra = make(map[string]string)
	}
	a.Extra[strings.ToUpper(key)] = value
}

// Attribute returns the named attribute; the key is case-insensitive.
func (a Analysis) Attribute(key string) (string, bool) {
	if f := a.field(key); f != nil {
		return *f, *f != ""
	}
	v, ok := a.Extra[strings.ToUpper(key)]
	return v, ok
}

// Attributes returns every present attribute keyed by its upper-case name.
func (a Analysis) Attributes() map[string]string {
	out := make(map[string]string, len(a.Extra)+8)
	for _, k := range []string{
		AttrBaseForm, AttrClass, AttrStructure, AttrFSTOutput, AttrNumber,
		AttrPerson, AttrMood, AttrTense, AttrNegative, AttrParticiple,
		AttrPossessive, AttrComparison, AttrCase, AttrQuestionClitic,
		AttrFocus, AttrWordBases,
	} {
		if v, ok := a.Attribute(k); ok {
			out[k] = v
		}
	}
	for k, v := range a.Extra {
		out[k] = v
	}
	return out
}

// AttributeNames returns the sorted names of the present attributes.
func (a Analysis) AttributeNames() []string {
	attrs := a.Attributes()
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
