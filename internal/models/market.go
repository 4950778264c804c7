package models

import (
	"fmt"
	"strings"
	"time"
)

// Price trend directions for a crop rate.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// CropRate is the market price record for one crop at one mandi.
type CropRate struct {
	Crop           string    `json:"crop"`
	CropName       string    `json:"crop_name"`
	NativeName     string    `json:"native_name"`
	CurrentPrice   float64   `json:"current_price"`
	Unit           string    `json:"unit"`
	MarketLocation string    `json:"market_location"`
	Trend          string    `json:"trend"`
	LastUpdated    time.Time `json:"last_updated"`
	HistoricalData []float64 `json:"historical_data,omitempty"`
}

// Validate enforces the crop rate invariants.
func (c *CropRate) Validate() error {
	if c.CurrentPrice < 0 {
		return fmt.Errorf("current price cannot be negative")
	}
	if c.Trend != TrendUp && c.Trend != TrendDown && c.Trend != TrendStable {
		return fmt.Errorf("trend must be %q, %q, or %q", TrendUp, TrendDown, TrendStable)
	}
	if strings.TrimSpace(c.CropName) == "" {
		return fmt.Errorf("crop name cannot be empty")
	}
	if strings.TrimSpace(c.Unit) == "" {
		return fmt.Errorf("unit cannot be empty")
	}
	if strings.TrimSpace(c.MarketLocation) == "" {
		return fmt.Errorf("market location cannot be empty")
	}
	return nil
}

// PricePerUnit returns the display price string, e.g. "₹2500.00 per quintal".
func (c *CropRate) PricePerUnit() string {
	return fmt.Sprintf("₹%.2f per %s", c.CurrentPrice, c.Unit)
}

// TrendIndicator returns the arrow symbol for the trend.
func (c *CropRate) TrendIndicator() string {
	switch c.Trend {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "→"
	}
}

// IsFresh reports whether the rate was updated within maxAge.
func (c *CropRate) IsFresh(maxAge time.Duration) bool {
	return time.Since(c.LastUpdated) < maxAge
}
