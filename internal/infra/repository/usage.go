package repository

import (
	"context"

	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/google/uuid"
)

// UsageCounterRepository is the default counter backend: a single
// upsert-increment statement, so concurrent submissions in the same period
// never lose updates.
type UsageCounterRepository struct {
	db db.DBTX
}

func NewUsageCounterRepository(dbtx db.DBTX) *UsageCounterRepository {
	return &UsageCounterRepository{db: dbtx}
}

func (r *UsageCounterRepository) Get(ctx context.Context, userID uuid.UUID, period string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(
			(SELECT response_count FROM usage_counters WHERE user_id = $1 AND period = $2),
			0
		)`, userID, period).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read usage counter", err, infra.KindUnavailable)
	}
	return count, nil
}

func (r *UsageCounterRepository) Increment(ctx context.Context, userID uuid.UUID, period string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		INSERT INTO usage_counters (user_id, period, response_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, period)
		DO UPDATE SET response_count = usage_counters.response_count + 1
		RETURNING response_count`, userID, period).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment usage counter", err, infra.KindUnavailable)
	}
	return count, nil
}
