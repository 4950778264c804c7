package services

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"mandi-backend/internal/models"
	"mandi-backend/internal/repository"
)

const historyWindowDays = 7

// MarketRateService reads crop prices for the API and the negotiation
// assistant.
type MarketRateService struct {
	repo *repository.CropRateRepo
}

func NewMarketRateService(repo *repository.CropRateRepo) *MarketRateService {
	return &MarketRateService{repo: repo}
}

func (s *MarketRateService) CurrentRates(ctx context.Context) ([]*models.CropRate, error) {
	return s.repo.List(ctx)
}

func (s *MarketRateService) GetRate(ctx context.Context, crop string) (*models.CropRate, error) {
	rate, err := s.repo.GetByCrop(ctx, crop)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "crop not found: " + crop}
	}
	return rate, err
}

func (s *MarketRateService) Search(ctx context.Context, query string) ([]*models.CropRate, error) {
	if query == "" {
		return nil, &InvalidRequestError{Message: "search query is empty"}
	}
	return s.repo.Search(ctx, query)
}

func (s *MarketRateService) Trending(ctx context.Context, direction string) ([]*models.CropRate, error) {
	if direction != models.TrendUp && direction != models.TrendDown && direction != models.TrendStable {
		return nil, &InvalidRequestError{Message: "direction must be up, down, or stable"}
	}
	return s.repo.ListByTrend(ctx, direction)
}

func (s *MarketRateService) History(ctx context.Context, crop string, days int) ([]float64, error) {
	if days <= 0 {
		days = historyWindowDays
	}
	history, err := s.repo.History(ctx, crop, days)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "crop not found: " + crop}
	}
	return history, err
}

// RateRefresher periodically applies a small random fluctuation to every crop
// price, keeping the mock market alive between real data sources.
type RateRefresher struct {
	repo     *repository.CropRateRepo
	interval time.Duration
	stopChan chan struct{}
}

func NewRateRefresher(repo *repository.CropRateRepo, intervalMinutes int) *RateRefresher {
	return &RateRefresher{
		repo:     repo,
		interval: time.Duration(intervalMinutes) * time.Minute,
		stopChan: make(chan struct{}),
	}
}

func (r *RateRefresher) Start() {
	go r.loop()
	log.Printf("Market rate refresher started (every %s)", r.interval)
}

func (r *RateRefresher) Stop() {
	select {
	case <-r.stopChan:
		return
	default:
		close(r.stopChan)
	}
}

func (r *RateRefresher) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.refresh(context.Background())
		}
	}
}

func (r *RateRefresher) refresh(ctx context.Context) {
	rates, err := r.repo.List(ctx)
	if err != nil {
		log.Printf("rate refresh: failed to list crops: %v", err)
		return
	}

	for _, rate := range rates {
		newPrice, trend := FluctuatePrice(rate.CurrentPrice, rand.Float64())
		if err := r.repo.UpdatePrice(ctx, rate.Crop, newPrice, trend); err != nil {
			log.Printf("rate refresh: failed to update %s: %v", rate.Crop, err)
		}
	}
}

// FluctuatePrice applies a variation in [-5%, +5%] derived from sample
// (expected in [0,1)) and reports the resulting trend.
func FluctuatePrice(price, sample float64) (float64, string) {
	variation := (sample*2 - 1) * 0.05
	newPrice := math.Round(price*(1+variation)*100) / 100

	trend := models.TrendStable
	if newPrice > price {
		trend = models.TrendUp
	} else if newPrice < price {
		trend = models.TrendDown
	}
	return newPrice, trend
}
