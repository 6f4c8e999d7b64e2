package commands

import (
	"context"
	"time"

	"request-market/internal/domain/request"
	"request-market/internal/domain/response"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository.

type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	Update(ctx context.Context, req *request.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AcceptResponse sets the acceptance pointer and, in the same statement,
	// closes the request if it was active.
	AcceptResponse(ctx context.Context, requestID, responseID uuid.UUID, now time.Time) error
	// ClearAccepted drops the pointer and reopens the request if the
	// acceptance closed it.
	ClearAccepted(ctx context.Context, requestID uuid.UUID, now time.Time) error
	MarkCompleted(ctx context.Context, requestID uuid.UUID, now time.Time) error
	UpdateUrgentBoost(ctx context.Context, req *request.Request) error
}

type ResponseRepository interface {
	// Create relies on the store's (request_id, responder_id) uniqueness
	// constraint; concurrent duplicates surface as a duplicate-key error.
	Create(ctx context.Context, res *response.Response) error
	FindByID(ctx context.Context, id uuid.UUID) (*response.Response, error)
	Update(ctx context.Context, res *response.Response) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentGateway is the external payment collaborator. This core only records
// the returned transaction reference and reacts to the settle signal.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, requestID uuid.UUID, amount float64, currency string) (string, error)
	// SettleTransaction marks the pending transaction as paid. It fails with
	// a not-found kind when the reference is unknown, was issued for another
	// request, or is no longer pending.
	SettleTransaction(ctx context.Context, ref string, requestID uuid.UUID) error
}

// CountryConfigStore reads and writes per-country module settings. It replaces
// the historical module-level mutable map so concurrent admin updates are safe.
type CountryConfigStore interface {
	UrgentBoostPrice(ctx context.Context, countryCode string) (amount float64, currency string, err error)
	SetUrgentBoostPrice(ctx context.Context, countryCode string, amount float64, currency string) error
}
