package repository

import (
	"context"
	"errors"
	"time"

	"request-market/internal/domain/request"
	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

const requestColumns = `
	id, owner_id, type, category_id, subcategory_id, country_code,
	title, description, city, phone, email, status, accepted_response_id,
	is_urgent, urgent_until, urgent_payment_ref, created_at, updated_at`

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO requests (
			id, owner_id, type, category_id, subcategory_id, country_code,
			title, description, city, phone, email, status,
			is_urgent, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		req.ID(), req.OwnerID(), req.Type().String(), req.CategoryID(), req.SubcategoryID(),
		req.CountryCode(), req.Title(), req.Description(), req.City(), req.Phone(), req.Email(),
		req.Status().String(), req.IsUrgent(), req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create request", err, classifyPgErr(err))
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT`+requestColumns+` FROM requests WHERE id = $1`, id)

	entity, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return entity, nil
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET title = $2, description = $3, city = $4, phone = $5, email = $6,
		    category_id = $7, subcategory_id = $8, updated_at = $9
		WHERE id = $1`,
		req.ID(), req.Title(), req.Description(), req.City(), req.Phone(), req.Email(),
		req.CategoryID(), req.SubcategoryID(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

// AcceptResponse is a single statement so the close-on-accept transition is
// atomic with the pointer write even under concurrent accepts.
func (r *RequestRepository) AcceptResponse(ctx context.Context, requestID, responseID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET accepted_response_id = $2,
		    status = CASE WHEN status = 'active' THEN 'closed' ELSE status END,
		    updated_at = $3
		WHERE id = $1`,
		requestID, responseID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to accept response", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) ClearAccepted(ctx context.Context, requestID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET accepted_response_id = NULL,
		    status = CASE WHEN status = 'closed' THEN 'active' ELSE status END,
		    updated_at = $2
		WHERE id = $1`,
		requestID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear accepted response", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkCompleted keeps the acceptance requirement in the statement itself so a
// concurrent clear cannot slip a completion through.
func (r *RequestRepository) MarkCompleted(ctx context.Context, requestID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET status = 'completed', updated_at = $2
		WHERE id = $1 AND accepted_response_id IS NOT NULL`,
		requestID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark request completed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found or has no accepted response", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) UpdateUrgentBoost(ctx context.Context, req *request.Request) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET is_urgent = $2, urgent_until = $3, urgent_payment_ref = $4, updated_at = $5
		WHERE id = $1`,
		req.ID(), req.IsUrgent(), req.UrgentUntil(), req.UrgentPaymentRef(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update urgent boost", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRequest(row pgx.Row) (*request.Request, error) {
	var (
		id, ownerID        uuid.UUID
		reqType, status    string
		categoryID         *int32
		subcategoryID      *int32
		countryCode        string
		title, description string
		city, phone, email string
		acceptedResponseID *uuid.UUID
		isUrgent           bool
		urgentUntil        *time.Time
		urgentPaymentRef   *string
		createdAt          time.Time
		updatedAt          time.Time
	)

	err := row.Scan(
		&id, &ownerID, &reqType, &categoryID, &subcategoryID, &countryCode,
		&title, &description, &city, &phone, &email, &status, &acceptedResponseID,
		&isUrgent, &urgentUntil, &urgentPaymentRef, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return request.ReconstructRequest(
		id, ownerID, request.Type(reqType), categoryID, subcategoryID,
		countryCode, title, description, city, phone, email,
		request.Status(status), acceptedResponseID,
		isUrgent, urgentUntil, urgentPaymentRef,
		createdAt, updatedAt,
	), nil
}
