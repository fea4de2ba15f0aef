package model

import "strings"

// Language is a supported conversation language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageShona   Language = "sn"

	// DefaultLanguage is used whenever detection is inconclusive.
	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists every language the bot can answer in.
var SupportedLanguages = []Language{LanguageEnglish, LanguageShona}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

// ParseLanguage maps a code to a supported Language, defaulting to English.
func ParseLanguage(code string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if l.IsSupported() {
		return l
	}
	return DefaultLanguage
}
