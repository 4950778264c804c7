package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mandi-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

const cropRateColumns = `crop, crop_name, native_name, current_price, unit,
	market_location, trend, last_updated, historical_data`

type CropRateRepo struct {
	pool *pgxpool.Pool
}

func NewCropRateRepo(pool *pgxpool.Pool) *CropRateRepo {
	return &CropRateRepo{pool: pool}
}

func (r *CropRateRepo) List(ctx context.Context) ([]*models.CropRate, error) {
	query := fmt.Sprintf("SELECT %s FROM crop_rates ORDER BY crop_name", cropRateColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCropRates(rows)
}

func (r *CropRateRepo) GetByCrop(ctx context.Context, crop string) (*models.CropRate, error) {
	query := fmt.Sprintf("SELECT %s FROM crop_rates WHERE crop = $1", cropRateColumns)

	rate, err := scanCropRate(r.pool.QueryRow(ctx, query, crop))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rate, err
}

func (r *CropRateRepo) Search(ctx context.Context, q string) ([]*models.CropRate, error) {
	query := fmt.Sprintf(`SELECT %s FROM crop_rates
		WHERE crop_name ILIKE $1 OR native_name ILIKE $1 OR crop ILIKE $1
		ORDER BY crop_name`, cropRateColumns)

	rows, err := r.pool.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCropRates(rows)
}

func (r *CropRateRepo) ListByTrend(ctx context.Context, trend string) ([]*models.CropRate, error) {
	query := fmt.Sprintf("SELECT %s FROM crop_rates WHERE trend = $1 ORDER BY crop_name", cropRateColumns)

	rows, err := r.pool.Query(ctx, query, trend)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCropRates(rows)
}

// UpdatePrice writes a new price, trend, and timestamp and appends the price
// to the history array, trimming it to the last 30 entries.
func (r *CropRateRepo) UpdatePrice(ctx context.Context, crop string, price float64, trend string) error {
	query := `UPDATE crop_rates SET
		current_price = $2,
		trend = $3,
		last_updated = NOW(),
		historical_data = (array_append(historical_data, $2::double precision))[greatest(1, array_length(array_append(historical_data, $2::double precision), 1) - 29):]
		WHERE crop = $1`

	tag, err := r.pool.Exec(ctx, query, crop, price, trend)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// History returns up to the last n recorded prices for a crop.
func (r *CropRateRepo) History(ctx context.Context, crop string, n int) ([]float64, error) {
	rate, err := r.GetByCrop(ctx, crop)
	if err != nil {
		return nil, err
	}

	history := rate.HistoricalData
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	return history, nil
}

func scanCropRate(row pgx.Row) (*models.CropRate, error) {
	c := &models.CropRate{}
	err := row.Scan(
		&c.Crop, &c.CropName, &c.NativeName, &c.CurrentPrice, &c.Unit,
		&c.MarketLocation, &c.Trend, &c.LastUpdated, &c.HistoricalData,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCropRates(rows pgx.Rows) ([]*models.CropRate, error) {
	var rates []*models.CropRate
	for rows.Next() {
		rate, err := scanCropRate(rows)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
