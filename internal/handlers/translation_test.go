package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mandi-backend/internal/models"
	"mandi-backend/internal/services"
)

type stubTranslationService struct {
	resp      *models.TranslationResponse
	batchOut  []string
	err       error
	lastReq   models.TranslationRequest
	calls     int
	cacheHits int
}

func (s *stubTranslationService) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubTranslationService) TranslateBatch(ctx context.Context, texts []string, target models.Language) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.batchOut, nil
}

func (s *stubTranslationService) ClearCache(ctx context.Context) error {
	return s.err
}

func TestTranslationHandler_Translate(t *testing.T) {
	stub := &stubTranslationService{
		resp: &models.TranslationResponse{
			TranslatedText: "What is the price?",
			SourceLanguage: models.LanguageHindi,
			TargetLanguage: models.LanguageEnglish,
		},
	}
	h := NewTranslationHandler(stub)

	body, _ := json.Marshal(models.TranslationRequest{
		SourceText:     "भाव क्या है?",
		SourceLanguage: models.LanguageHindi,
		TargetLanguage: models.LanguageEnglish,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Translate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one service call, got %d", stub.calls)
	}

	var resp models.TranslationResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TranslatedText == "" {
		t.Error("expected a non-empty translation")
	}
}

func TestTranslationHandler_Translate_InvalidBody(t *testing.T) {
	h := NewTranslationHandler(&stubTranslationService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Translate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTranslationHandler_Translate_AIError(t *testing.T) {
	stub := &stubTranslationService{
		err: &services.AIServiceError{Cause: errors.New("context deadline exceeded")},
	}
	h := NewTranslationHandler(stub)

	body, _ := json.Marshal(models.TranslationRequest{
		SourceText:     "भाव किती?",
		SourceLanguage: models.LanguageMarathi,
		TargetLanguage: models.LanguageEnglish,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Translate(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "AI_SERVICE_ERROR" {
		t.Errorf("expected AI_SERVICE_ERROR, got %q", resp.Error.Code)
	}
}

func TestTranslationHandler_AIError_LocalizedMessage(t *testing.T) {
	stub := &stubTranslationService{err: &services.AIServiceError{}}
	h := NewTranslationHandler(stub)

	body, _ := json.Marshal(models.TranslationRequest{
		SourceText:     "भाव किती?",
		SourceLanguage: models.LanguageMarathi,
		TargetLanguage: models.LanguageEnglish,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate?lang=marathi", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Translate(rr, req)

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.Contains(resp.Error.Message, "AI सेवा") {
		t.Errorf("expected Marathi error message, got %q", resp.Error.Message)
	}
}

func TestTranslationHandler_Detect(t *testing.T) {
	h := NewTranslationHandler(&stubTranslationService{})

	tests := []struct {
		name     string
		text     string
		expected models.Language
	}{
		{"english text", "what is the rate", models.LanguageEnglish},
		{"devanagari text", "भाव किती?", models.LanguageMarathi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(models.DetectLanguageRequest{Text: tc.text})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/translate/detect", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			h.Detect(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
			}

			var resp models.DetectLanguageResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Language != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, resp.Language)
			}
		})
	}
}

func TestTranslationHandler_Languages(t *testing.T) {
	h := NewTranslationHandler(&stubTranslationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/translate/languages", nil)
	rr := httptest.NewRecorder()
	h.Languages(rr, req)

	var resp struct {
		Languages []models.LanguageInfo `json:"languages"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Languages) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(resp.Languages))
	}
	if resp.Languages[0].Code != "mr" {
		t.Errorf("expected marathi first, got %q", resp.Languages[0].Code)
	}
}

func TestUILanguage(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		header   string
		expected models.Language
	}{
		{"query param wins", "?lang=hindi", "en-US", models.LanguageHindi},
		{"accept-language fallback", "", "mr-IN,mr;q=0.9,en;q=0.8", models.LanguageMarathi},
		{"default english", "", "", models.LanguageEnglish},
		{"unknown header defaults", "", "ta-IN", models.LanguageEnglish},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/translate/languages"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}

			if got := uiLanguage(req); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}
