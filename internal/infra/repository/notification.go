package repository

import (
	"context"
	"encoding/json"

	"request-market/internal/infra"
	"request-market/internal/infra/db"
	"request-market/internal/usecase/dispatch"

	"github.com/google/uuid"
)

const (
	jobKindNewRequestMatch = "new_request_match"
	jobKindNewResponse     = "new_response"
)

// NotificationOutbox persists notification jobs for the external delivery
// worker. Rows are picked up and sent out of band, so a write here is the
// whole contract.
type NotificationOutbox struct {
	db db.DBTX
}

func NewNotificationOutbox(dbtx db.DBTX) *NotificationOutbox {
	return &NotificationOutbox{db: dbtx}
}

func (o *NotificationOutbox) NotifyBusiness(ctx context.Context, businessID uuid.UUID, summary dispatch.RequestSummary, reason string) error {
	payload, err := json.Marshal(struct {
		dispatch.RequestSummary
		Reason string `json:"reason"`
	}{RequestSummary: summary, Reason: reason})
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	_, err = o.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, recipient_id, payload, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), jobKindNewRequestMatch, businessID, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue business notification", err)
	}
	return nil
}

func (o *NotificationOutbox) NotifyRequestOwner(ctx context.Context, ownerID, requestID, responseID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"request_id":  requestID.String(),
		"response_id": responseID.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	_, err = o.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, recipient_id, payload, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), jobKindNewResponse, ownerID, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue owner notification", err)
	}
	return nil
}
