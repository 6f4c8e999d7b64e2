package repository

import (
	"context"
	"errors"
	"time"

	"request-market/internal/domain/response"
	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResponseRepository struct {
	db db.DBTX
}

func NewResponseRepository(dbtx db.DBTX) *ResponseRepository {
	return &ResponseRepository{db: dbtx}
}

// Create surfaces the (request_id, responder_id) unique constraint as
// DUPLICATE_KEY so concurrent duplicate submissions become a clean conflict.
func (r *ResponseRepository) Create(ctx context.Context, res *response.Response) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO responses (
			id, request_id, responder_id, message, price, currency, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID(), res.RequestID(), res.ResponderID(), res.Message(),
		res.Price(), res.Currency(), string(res.Status()),
		res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create response", err, classifyPgErr(err))
	}
	return nil
}

func (r *ResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*response.Response, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, request_id, responder_id, message, price, currency, status,
		       created_at, updated_at
		FROM responses WHERE id = $1`, id)

	entity, err := scanResponse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("response not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find response by ID", err)
	}
	return entity, nil
}

func (r *ResponseRepository) Update(ctx context.Context, res *response.Response) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE responses
		SET message = $2, price = $3, currency = $4, updated_at = $5
		WHERE id = $1`,
		res.ID(), res.Message(), res.Price(), res.Currency(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update response", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("response not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResponseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM responses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete response", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("response not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanResponse(row pgx.Row) (*response.Response, error) {
	var (
		id, requestID, responderID uuid.UUID
		message, status            string
		price                      *float64
		currency                   *string
		createdAt, updatedAt       time.Time
	)

	err := row.Scan(&id, &requestID, &responderID, &message, &price, &currency, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return response.ReconstructResponse(
		id, requestID, responderID, message, price, currency,
		response.Status(status), createdAt, updatedAt,
	), nil
}
