package readstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"request-market/internal/infra"
	"request-market/internal/infra/db"
	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RequestReadStore serves the query side directly from SQL. Views carry raw
// contact data here; masking is the gating filter's job, one layer up.
type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	id, owner_id, type, category_id, subcategory_id, country_code,
	title, description, city, phone, email, status,
	accepted_response_id, is_urgent, urgent_until, created_at, updated_at`

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+requestViewColumns+` FROM requests WHERE id = $1`, id)
	view, err := scanRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return view, nil
}

// Search orders urgent-and-unexpired requests first, then newest-first.
// Urgency is evaluated against the supplied now, so expired boosts fall back
// into the normal ordering without any background sweep.
func (s *RequestReadStore) Search(ctx context.Context, filters queries.RequestFilters, now time.Time, page queries.Page) ([]*queries.RequestView, int, error) {
	where := "WHERE status = 'active'"
	args := []any{}

	if filters.CountryCode != "" {
		args = append(args, filters.CountryCode)
		where += fmt.Sprintf(" AND country_code = $%d", len(args))
	}
	if filters.Type != "" {
		args = append(args, filters.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		where += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := s.db.QueryRow(ctx, "SELECT count(*) FROM requests "+where, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count requests", err)
	}

	args = append(args, now)
	order := fmt.Sprintf(" ORDER BY (is_urgent AND urgent_until > $%d) DESC, created_at DESC", len(args))
	args = append(args, page.Limit, page.Offset)
	query := "SELECT " + requestViewColumns + " FROM requests " + where + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	views, err := s.queryViews(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *RequestReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]*queries.RequestView, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM requests WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count owner requests", err)
	}

	views, err := s.queryViews(ctx, `
		SELECT `+requestViewColumns+` FROM requests
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *RequestReadStore) RespondedRequestIDs(ctx context.Context, viewerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return set, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT request_id FROM responses
		WHERE responder_id = $1 AND request_id = ANY($2)`, viewerID, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query responded requests", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan responded request id", err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read responded requests", err)
	}
	return set, nil
}

func (s *RequestReadStore) queryViews(ctx context.Context, query string, args ...any) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query requests", err)
	}
	defer rows.Close()

	views := []*queries.RequestView{}
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read requests", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Type,
		&v.CategoryID,
		&v.SubcategoryID,
		&v.CountryCode,
		&v.Title,
		&v.Description,
		&v.City,
		&v.Phone,
		&v.Email,
		&v.Status,
		&v.AcceptedResponseID,
		&v.IsUrgent,
		&v.UrgentUntil,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
