package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mandi-backend/internal/models"
)

type marketService interface {
	CurrentRates(ctx context.Context) ([]*models.CropRate, error)
	GetRate(ctx context.Context, crop string) (*models.CropRate, error)
	Search(ctx context.Context, query string) ([]*models.CropRate, error)
	Trending(ctx context.Context, direction string) ([]*models.CropRate, error)
	History(ctx context.Context, crop string, days int) ([]float64, error)
}

type MarketHandler struct {
	market marketService
}

func NewMarketHandler(market marketService) *MarketHandler {
	return &MarketHandler{market: market}
}

func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.market.CurrentRates(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rates": rates,
		"total": len(rates),
	})
}

func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	rate, err := h.market.GetRate(r.Context(), chi.URLParam(r, "crop"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rate)
}

func (h *MarketHandler) History(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	history, err := h.market.History(r.Context(), chi.URLParam(r, "crop"), days)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"crop":    chi.URLParam(r, "crop"),
		"history": history,
	})
}

func (h *MarketHandler) Trending(w http.ResponseWriter, r *http.Request) {
	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = models.TrendUp
	}

	rates, err := h.market.Trending(r.Context(), direction)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"direction": direction,
		"rates":     rates,
	})
}

func (h *MarketHandler) Search(w http.ResponseWriter, r *http.Request) {
	rates, err := h.market.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rates": rates,
		"total": len(rates),
	})
}
