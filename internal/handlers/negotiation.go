package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mandi-backend/internal/models"
)

type negotiationService interface {
	Start(ctx context.Context, req models.StartNegotiationRequest) (*models.NegotiationSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.NegotiationSession, []*models.NegotiationMessage, error)
	ProcessMessage(ctx context.Context, sessionID uuid.UUID, req models.NegotiationMessageRequest) (string, error)
	SuggestFairPrice(ctx context.Context, sessionID uuid.UUID) (*models.PriceSuggestion, error)
	FinalizeDeal(ctx context.Context, sessionID uuid.UUID, agreedPrice float64) (*models.DealSummary, error)
}

type NegotiationHandler struct {
	assistant negotiationService
}

func NewNegotiationHandler(assistant negotiationService) *NegotiationHandler {
	return &NegotiationHandler{assistant: assistant}
}

func (h *NegotiationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartNegotiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	session, err := h.assistant.Start(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *NegotiationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	session, messages, err := h.assistant.GetSession(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":  session,
		"messages": messages,
	})
}

func (h *NegotiationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	var req models.NegotiationMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	reply, err := h.assistant.ProcessMessage(r.Context(), sessionID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NegotiationMessageResponse{
		Reply:     reply,
		SessionID: sessionID,
	})
}

func (h *NegotiationHandler) SuggestPrice(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	suggestion, err := h.assistant.SuggestFairPrice(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}

func (h *NegotiationHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	var req models.FinalizeDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "error.invalid", r))
		return
	}

	deal, err := h.assistant.FinalizeDeal(r.Context(), sessionID, req.AgreedPrice)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deal)
}
