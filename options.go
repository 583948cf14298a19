package voikko

import "fmt"

// Options control spelling, hyphenation, suggestion and grammar behaviour.
// The zero value is not the default; use DefaultOptions.
type Options struct {
	// Spell checking.
	IgnoreDot            bool
	IgnoreNumbers        bool
	IgnoreUppercase      bool
	AcceptFirstUppercase bool
	AcceptAllUppercase   bool
	IgnoreNonwords       bool
	AcceptExtraHyphens   bool
	AcceptMissingHyphens bool

	// Grammar checking.
	AcceptTitlesInGc               bool
	AcceptUnfinishedParagraphsInGc bool
	AcceptBulletedListsInGc        bool

	// Hyphenation.
	NoUglyHyphenation       bool
	HyphenateUnknownWords   bool
	MinHyphenatedWordLength int

	OCRSuggestions bool

	// SpellerCacheSize selects a cache of 1024<<n entries; -1 disables it.
	SpellerCacheSize int
}

// DefaultOptions returns the options a new engine starts with.
func DefaultOptions() Options {
	return Options{
		AcceptFirstUppercase:    true,
		AcceptAllUppercase:      true,
		IgnoreNonwords:          true,
		HyphenateUnknownWords:   true,
		MinHyphenatedWordLength: 2,
	}
}

const maxSpellerCacheSize = 10

func (o Options) validate() error {
	if o.MinHyphenatedWordLength < 1 {
		return fmt.Errorf("%w: minimum hyphenated word length %d", ErrInvalidInput, o.MinHyphenatedWordLength)
	}
	if o.SpellerCacheSize < -1 || o.SpellerCacheSize > maxSpellerCacheSize {
		return fmt.Errorf("%w: speller cache size %d", ErrInvalidInput, o.SpellerCacheSize)
	}
	return nil
}

// BoolOption names a boolean option for SetBoolOption.
type BoolOption int

const (
	OptIgnoreDot BoolOption = iota
	OptIgnoreNumbers
	OptIgnoreUppercase
	OptAcceptFirstUppercase
	OptAcceptAllUppercase
	OptIgnoreNonwords
	OptAcceptExtraHyphens
	OptAcceptMissingHyphens
	OptAcceptTitlesInGc
	OptAcceptUnfinishedParagraphsInGc
	OptAcceptBulletedListsInGc
	OptNoUglyHyphenation
	OptHyphenateUnknownWords
	OptOCRSuggestions
)

// IntOption names an integer option for SetIntOption.
type IntOption int

const (
	OptMinHyphenatedWordLength IntOption = iota
	OptSpellerCacheSize
)

func (o *Options) boolField(opt BoolOption) *bool {
	switch opt {
	case OptIgnoreDot:
		return &o.IgnoreDot
	case OptIgnoreNumbers:
		return &o.IgnoreNumbers
	case OptIgnoreUppercase:
		return &o.IgnoreUppercase
	case OptAcceptFirstUppercase:
		return &o.AcceptFirstUppercase
	case OptAcceptAllUppercase:
		return &o.AcceptAllUppercase
	case OptIgnoreNonwords:
		return &o.IgnoreNonwords
	case OptAcceptExtraHyphens:
		return &o.AcceptExtraHyphens
	case OptAcceptMissingHyphens:
		return &o.AcceptMissingHyphens
	case OptAcceptTitlesInGc:
		return &o.AcceptTitlesInGc
	case OptAcceptUnfinishedParagraphsInGc:
		return &o.AcceptUnfinishedParagraphsInGc
	case OptAcceptBulletedListsInGc:
		return &o.AcceptBulletedListsInGc
	case OptNoUglyHyphenation:
		return &o.NoUglyHyphenation
	case OptHyphenateUnknownWords:
		return &o.HyphenateUnknownWords
	case OptOCRSuggestions:
		return &o.OCRSuggestions
	}
	return nil
}

func (o *Options) intField(opt IntOption) *int {
	switch opt {
	case OptMinHyphenatedWordLength:
		return &o.MinHyphenatedWordLength
	case OptSpellerCacheSize:
		return &o.SpellerCacheSize
	}
	return nil
}
