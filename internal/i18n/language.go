package i18n

import "strings"

// Language identifies one of the display languages supported by the site.
// The set is closed: content rows carry one record per language and the
// resolver falls back between the two.
type Language string

const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// DefaultLanguage is the language used when a client has no stored preference.
const DefaultLanguage = LanguageZH

// Languages returns the supported languages in preference order.
func Languages() []Language {
	return []Language{LanguageZH, LanguageEN}
}

// Parse normalizes a raw language value. The second return reports whether the
// value names a supported language.
func Parse(value string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(value))) {
	case LanguageZH:
		return LanguageZH, true
	case LanguageEN:
		return LanguageEN, true
	}
	return "", false
}

// ParseOrDefault normalizes a raw language value, returning fallback when the
// value is empty or unsupported.
func ParseOrDefault(value string, fallback Language) Language {
	if lang, ok := Parse(value); ok {
		return lang
	}
	return fallback
}

// Valid reports whether the language is part of the supported set.
func (l Language) Valid() bool {
	_, ok := Parse(string(l))
	return ok
}

// Other returns the alternate language, used by the localized field resolver
// when the requested language has no content.
func (l Language) Other() Language {
	if l == LanguageEN {
		return LanguageZH
	}
	return LanguageEN
}

func (l Language) String() string {
	return string(l)
}
