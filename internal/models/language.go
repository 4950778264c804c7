package models

import "fmt"

// Language is one of the three trading languages the mandi supports.
type Language string

const (
	LanguageMarathi Language = "marathi"
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
)

var languageCodes = map[Language]string{
	LanguageMarathi: "mr",
	LanguageHindi:   "hi",
	LanguageEnglish: "en",
}

var languageNativeNames = map[Language]string{
	LanguageMarathi: "मराठी",
	LanguageHindi:   "हिंदी",
	LanguageEnglish: "English",
}

// SupportedLanguages in display order.
func SupportedLanguages() []Language {
	return []Language{LanguageMarathi, LanguageHindi, LanguageEnglish}
}

// ParseLanguage normalizes a language name or ISO code.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "marathi", "mr":
		return LanguageMarathi, nil
	case "hindi", "hi":
		return LanguageHindi, nil
	case "english", "en":
		return LanguageEnglish, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

func (l Language) Valid() bool {
	_, ok := languageCodes[l]
	return ok
}

// Code returns the ISO 639-1 code ("mr", "hi", "en").
func (l Language) Code() string {
	return languageCodes[l]
}

// NativeName returns the language name in its own script.
func (l Language) NativeName() string {
	return languageNativeNames[l]
}

func (l Language) String() string {
	return string(l)
}
