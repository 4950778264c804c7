package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mandi-backend/internal/i18n"
	"mandi-backend/internal/middleware"
	"mandi-backend/internal/models"
	"mandi-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// uiLanguage picks the language for user-visible messages: explicit ?lang=
// first, then Accept-Language, defaulting to English.
func uiLanguage(r *http.Request) models.Language {
	if lang, err := models.ParseLanguage(r.URL.Query().Get("lang")); err == nil {
		return lang
	}

	accept := r.Header.Get("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		tag = strings.SplitN(tag, "-", 2)[0]
		if lang, err := models.ParseLanguage(tag); err == nil {
			return lang
		}
	}

	return models.LanguageEnglish
}

func errorResp(code, messageKey string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   i18n.T(uiLanguage(r), messageKey),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	}
}

func errorRespWithFields(code, messageKey string, fields map[string]string, r *http.Request) models.ErrorResponse {
	resp := errorResp(code, messageKey, r)
	resp.Error.Fields = fields
	return resp
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalid   *services.InvalidRequestError
		aiErr     *services.AIServiceError
		notFound  *services.NotFoundError
		conflict  *services.ConflictError
		rateLimit *services.RateLimitError
	)

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "error.invalid", invalid.Fields, r))
	case errors.As(err, &aiErr):
		writeJSON(w, http.StatusBadGateway, errorResp("AI_SERVICE_ERROR", "error.ai_service", r))
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "error.not_found", r))
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "error.deal_closed", r))
	case errors.As(err, &rateLimit):
		writeJSON(w, http.StatusTooManyRequests, errorResp("RATE_LIMITED", "error.rate_limited", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "error.internal", r))
	}
}
