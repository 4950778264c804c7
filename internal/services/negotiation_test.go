package services

import (
	"testing"

	"mandi-backend/internal/models"
)

func TestSuggestPrice(t *testing.T) {
	tests := []struct {
		name        string
		marketPrice float64
		role        string
		trend       string
		expected    float64
	}{
		{"buyer stable", 2500, models.RoleBuyer, models.TrendStable, 2375},
		{"seller stable", 2500, models.RoleSeller, models.TrendStable, 2625},
		{"buyer rising market", 2500, models.RoleBuyer, models.TrendUp, 2400},
		{"seller rising market", 2500, models.RoleSeller, models.TrendUp, 2650},
		{"buyer falling market", 2500, models.RoleBuyer, models.TrendDown, 2350},
		{"seller falling market", 2500, models.RoleSeller, models.TrendDown, 2600},
		{"rounds to paise", 333.33, models.RoleBuyer, models.TrendStable, 316.66},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SuggestPrice(tc.marketPrice, tc.role, tc.trend)
			if got != tc.expected {
				t.Errorf("Expected %.2f, got %.2f", tc.expected, got)
			}
		})
	}
}

func TestFluctuatePrice(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		trend  string
	}{
		{"high sample raises price", 0.99, models.TrendUp},
		{"low sample lowers price", 0.01, models.TrendDown},
		{"midpoint holds price", 0.5, models.TrendStable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			price, trend := FluctuatePrice(2500, tc.sample)
			if trend != tc.trend {
				t.Errorf("Expected trend %s, got %s", tc.trend, trend)
			}

			// Never more than 5% away from the base price.
			if price < 2500*0.95 || price > 2500*1.05 {
				t.Errorf("Price %.2f outside the ±5%% band", price)
			}
		})
	}
}
