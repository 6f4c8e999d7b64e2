package readstore

import (
	"context"
	"errors"

	"request-market/internal/infra"
	"request-market/internal/infra/db"
	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResponseReadStore struct {
	db db.DBTX
}

func NewResponseReadStore(dbtx db.DBTX) *ResponseReadStore {
	return &ResponseReadStore{db: dbtx}
}

const responseViewColumns = `
	id, request_id, responder_id, message, price, currency, status, created_at, updated_at`

func (s *ResponseReadStore) FindByRequest(ctx context.Context, requestID uuid.UUID, page queries.Page) ([]*queries.ResponseView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM responses WHERE request_id = $1`, requestID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count responses", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+responseViewColumns+` FROM responses
		WHERE request_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, requestID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to query responses", err)
	}
	defer rows.Close()

	views := []*queries.ResponseView{}
	for rows.Next() {
		view, err := scanResponseView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan response", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read responses", err)
	}
	return views, total, nil
}

func (s *ResponseReadStore) FindByRequestAndResponder(ctx context.Context, requestID, responderID uuid.UUID) (*queries.ResponseView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+responseViewColumns+` FROM responses
		WHERE request_id = $1 AND responder_id = $2`, requestID, responderID)
	view, err := scanResponseView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find response", err)
	}
	return view, nil
}

func (s *ResponseReadStore) RequestOwner(ctx context.Context, requestID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT owner_id FROM requests WHERE id = $1`, requestID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find request owner", err)
	}
	return ownerID, nil
}

func scanResponseView(row pgx.Row) (*queries.ResponseView, error) {
	var v queries.ResponseView
	err := row.Scan(
		&v.ID,
		&v.RequestID,
		&v.ResponderID,
		&v.Message,
		&v.Price,
		&v.Currency,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
