package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mandi-backend/internal/models"
	"mandi-backend/internal/services"
)

type stubMarketService struct {
	rates   []*models.CropRate
	rate    *models.CropRate
	history []float64
	err     error
}

func (s *stubMarketService) CurrentRates(ctx context.Context) ([]*models.CropRate, error) {
	return s.rates, s.err
}

func (s *stubMarketService) GetRate(ctx context.Context, crop string) (*models.CropRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rate, nil
}

func (s *stubMarketService) Search(ctx context.Context, query string) ([]*models.CropRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func (s *stubMarketService) Trending(ctx context.Context, direction string) ([]*models.CropRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func (s *stubMarketService) History(ctx context.Context, crop string, days int) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func sampleRate() *models.CropRate {
	return &models.CropRate{
		Crop:           "wheat",
		CropName:       "Wheat",
		NativeName:     "गहूं",
		CurrentPrice:   2500,
		Unit:           "quintal",
		MarketLocation: "Pune Mandi",
		Trend:          models.TrendUp,
		LastUpdated:    time.Now(),
	}
}

func TestMarketHandler_List(t *testing.T) {
	stub := &stubMarketService{rates: []*models.CropRate{sampleRate()}}
	h := NewMarketHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market/rates", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp struct {
		Rates []*models.CropRate `json:"rates"`
		Total int                `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected total 1, got %d", resp.Total)
	}
	if resp.Rates[0].Crop != "wheat" {
		t.Errorf("expected wheat, got %q", resp.Rates[0].Crop)
	}
}

func TestMarketHandler_Get_NotFound(t *testing.T) {
	stub := &stubMarketService{err: &services.NotFoundError{Message: "crop not found: mango"}}
	h := NewMarketHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market/rates/mango", nil)
	req = withURLParam(req, "crop", "mango")

	rr := httptest.NewRecorder()
	h.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", resp.Error.Code)
	}
}

func TestMarketHandler_Search_EmptyQuery(t *testing.T) {
	stub := &stubMarketService{err: &services.InvalidRequestError{Message: "search query is empty"}}
	h := NewMarketHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market/search", nil)
	rr := httptest.NewRecorder()
	h.Search(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMarketHandler_History(t *testing.T) {
	stub := &stubMarketService{history: []float64{2400, 2450, 2500}}
	h := NewMarketHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market/rates/wheat/history?days=3", nil)
	req = withURLParam(req, "crop", "wheat")

	rr := httptest.NewRecorder()
	h.History(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp struct {
		Crop    string    `json:"crop"`
		History []float64 `json:"history"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.History) != 3 {
		t.Errorf("expected 3 prices, got %d", len(resp.History))
	}
}
