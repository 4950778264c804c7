package i18n

import (
	"testing"

	"mandi-backend/internal/models"
)

func TestT(t *testing.T) {
	tests := []struct {
		name     string
		lang     models.Language
		key      string
		expected string
	}{
		{"marathi lookup", models.LanguageMarathi, "market_rates", "बाजार भाव"},
		{"hindi lookup", models.LanguageHindi, "negotiation", "बातचीत"},
		{"english lookup", models.LanguageEnglish, "title", "The Multilingual Mandi"},
		{"unknown language falls back to english", models.Language("tamil"), "title", "The Multilingual Mandi"},
		{"unknown key falls back to key", models.LanguageEnglish, "no_such_key", "no_such_key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := T(tc.lang, tc.key); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestErrorMessagesExistInAllLanguages(t *testing.T) {
	keys := []string{"error.invalid", "error.empty_text", "error.ai_service", "error.not_found", "error.rate_limited", "error.internal", "error.deal_closed"}

	for _, lang := range models.SupportedLanguages() {
		for _, key := range keys {
			if T(lang, key) == key {
				t.Errorf("Missing %s message for %s", key, lang)
			}
		}
	}
}
