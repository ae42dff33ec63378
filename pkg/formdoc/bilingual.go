package formdoc

import "strings"

// Language selects which side of a bilingual label is rendered.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// ParseLanguage normalises a language code, defaulting to English for
// anything that is not a recognised tag.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "es", "es-mx", "es-es":
		return LanguageSpanish
	default:
		return LanguageEnglish
	}
}

// Bilingual carries the English and Spanish variants of a display string.
// English is the fallback side.
type Bilingual struct {
	EN string `json:"en" yaml:"en"`
	ES string `json:"es" yaml:"es"`
}

// Resolve returns the variant for the requested language, falling back to
// English, then to the empty string. It never fails.
func (b Bilingual) Resolve(lang Language) string {
	if lang == LanguageSpanish && b.ES != "" {
		return b.ES
	}
	return b.EN
}

// IsZero reports whether both variants are empty.
func (b Bilingual) IsZero() bool {
	return b.EN == "" && b.ES == ""
}
