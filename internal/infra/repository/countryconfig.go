package repository

import (
	"context"
	"errors"

	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// CountryConfigRepository stores per-country module settings in the database
// instead of a module-level mutable map, so concurrent admin updates are
// just row writes.
type CountryConfigRepository struct {
	db db.DBTX
}

func NewCountryConfigRepository(dbtx db.DBTX) *CountryConfigRepository {
	return &CountryConfigRepository{db: dbtx}
}

func (r *CountryConfigRepository) UrgentBoostPrice(ctx context.Context, countryCode string) (float64, string, error) {
	var (
		amount   float64
		currency string
	)
	err := r.db.QueryRow(ctx, `
		SELECT urgent_boost_amount, urgent_boost_currency
		FROM country_settings WHERE country_code = $1`, countryCode).Scan(&amount, &currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, "", infra.WrapRepoErr("country settings not found", err, infra.KindNotFound)
		}
		return 0, "", infra.WrapRepoErr("failed to read country settings", err)
	}
	return amount, currency, nil
}

func (r *CountryConfigRepository) SetUrgentBoostPrice(ctx context.Context, countryCode string, amount float64, currency string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO country_settings (country_code, urgent_boost_amount, urgent_boost_currency, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (country_code)
		DO UPDATE SET urgent_boost_amount = $2, urgent_boost_currency = $3, updated_at = now()`,
		countryCode, amount, currency,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to write country settings", err)
	}
	return nil
}
