package voikko

import (
	"strings"

	"golang.org/x/text/language"
)

// Grammar error codes.
const (
	GCExtraWhitespace               = 2
	GCSpaceBeforePunctuation        = 3
	GCExtraComma                    = 4
	GCWriteFirstUppercase           = 7
	GCRepeatingWord                 = 8
	GCTerminatingPunctuationMissing = 9
	GCNegativeVerbMismatch          = 13
)

const defaultReportLanguage = "en"

// gcDescriptions maps code → language → short description.
var gcDescriptions = map[int]map[string]string{
	GCExtraWhitespace: {
		"en": "Remove extra whitespace.",
		"fi": "Poista ylimääräinen välilyönti.",
	},
	GCSpaceBeforePunctuation: {
		"en": "Remove space before punctuation.",
		"fi": "Poista välilyönti ennen välimerkkiä.",
	},
	GCExtraComma: {
		"en": "Remove extra comma.",
		"fi": "Poista ylimääräinen pilkku.",
	},
	GCWriteFirstUppercase: {
		"en": "Sentence should start with an uppercase letter.",
		"fi": "Virkkeen tulisi alkaa isolla alkukirjaimella.",
	},
	GCRepeatingWord: {
		"en": "Remove duplicate word.",
		"fi": "Poista toistuva sana.",
	},
	GCTerminatingPunctuationMissing: {
		"en": "Terminating punctuation is missing.",
		"fi": "Virkkeen lopetusmerkki puuttuu.",
	},
	GCNegativeVerbMismatch: {
		"en": "Incorrect verb form after a negative verb.",
		"fi": "Kieltoverbin jälkeen tulee verbin kielteinen muoto.",
	},
}

// reportLanguage reduces a tag such as "fi-FI" to its base language.
func reportLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		return base
	}
	base, _ := t.Base()
	return base.String()
}

// GrammarErrorDescription returns the description of code in lang,
// falling back to English.
func GrammarErrorDescription(code int, lang string) string {
	d := gcDescriptions[code]
	if s, ok := d[reportLanguage(lang)]; ok {
		return s
	}
	return d[defaultReportLanguage]
}
