package models

// TranslationRequest is the payload for a single translation.
type TranslationRequest struct {
	SourceText     string   `json:"source_text"`
	SourceLanguage Language `json:"source_language"`
	TargetLanguage Language `json:"target_language"`
}

// TranslationResponse carries the translated text back to the caller.
type TranslationResponse struct {
	TranslatedText string   `json:"translated_text"`
	SourceLanguage Language `json:"source_language"`
	TargetLanguage Language `json:"target_language"`
	Cached         bool     `json:"cached"`
	LatencyMs      int64    `json:"latency_ms,omitempty"`
}

// BatchTranslationRequest translates several texts to one target language.
type BatchTranslationRequest struct {
	Texts          []string `json:"texts"`
	TargetLanguage Language `json:"target_language"`
}

type BatchTranslationResponse struct {
	Translations   []string `json:"translations"`
	TargetLanguage Language `json:"target_language"`
}

// DetectLanguageRequest asks for the likely language of a text.
type DetectLanguageRequest struct {
	Text string `json:"text"`
}

type DetectLanguageResponse struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
}

// LanguageInfo describes one supported language for the languages listing.
type LanguageInfo struct {
	Name       Language `json:"name"`
	Code       string   `json:"code"`
	NativeName string   `json:"native_name"`
}
