package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"mandi-backend/internal/models"
	"mandi-backend/internal/services"
)

type translationService interface {
	Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
	TranslateBatch(ctx context.Context, texts []string, target models.Language) ([]string, error)
	ClearCache(ctx context.Context) error
}

type TranslationHandler struct {
	translations translationService
}

func NewTranslationHandler(translations translationService) *TranslationHandler {
	return &TranslationHandler{translations: translations}
}

func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	resp, err := h.translations.Translate(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *TranslationHandler) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	translations, err := h.translations.TranslateBatch(r.Context(), req.Texts, req.TargetLanguage)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.BatchTranslationResponse{
		Translations:   translations,
		TargetLanguage: req.TargetLanguage,
	})
}

func (h *TranslationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req models.DetectLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.empty_text", r))
		return
	}

	lang := services.DetectLanguage(req.Text)
	writeJSON(w, http.StatusOK, models.DetectLanguageResponse{
		Language: lang,
		Code:     lang.Code(),
	})
}

func (h *TranslationHandler) Languages(w http.ResponseWriter, r *http.Request) {
	langs := models.SupportedLanguages()
	infos := make([]models.LanguageInfo, len(langs))
	for i, l := range langs {
		infos[i] = models.LanguageInfo{
			Name:       l,
			Code:       l.Code(),
			NativeName: l.NativeName(),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"languages": infos})
}

func (h *TranslationHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.translations.ClearCache(r.Context()); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "translation cache cleared"})
}
