package dispatch

import (
	"context"
	"log/slog"

	"request-market/internal/domain/business"
	"request-market/internal/domain/matching"
	"request-market/internal/domain/request"

	"github.com/google/uuid"
)

// BusinessDirectory reads profile snapshots from the external verification
// and subscription subsystem.
type BusinessDirectory interface {
	FindEligibleByCountry(ctx context.Context, countryCode string) ([]business.Profile, error)
	// FindByOwnerID returns nil when the user has no business profile.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*business.Profile, error)
}

type RequestSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Type  string    `json:"type"`
	City  string    `json:"city"`
}

// Notifier hands a matched business to the external notification channel.
// Fire-and-forget.
type Notifier interface {
	NotifyBusiness(ctx context.Context, businessID uuid.UUID, summary RequestSummary, reason string) error
	NotifyRequestOwner(ctx context.Context, ownerID, requestID, responseID uuid.UUID) error
}

type Dispatcher struct {
	directory BusinessDirectory
	engine    *matching.Engine
	notifier  Notifier
	logger    *slog.Logger
}

func NewDispatcher(directory BusinessDirectory, engine *matching.Engine, notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{directory: directory, engine: engine, notifier: notifier, logger: logger}
}

// DispatchNewRequest routes a freshly created request to eligible businesses.
// It never returns an error: dispatch is best-effort and must not affect the
// creation it runs for. Failures are logged and swallowed, never retried.
func (d *Dispatcher) DispatchNewRequest(ctx context.Context, info matching.RequestInfo, summary RequestSummary) {
	profiles, err := d.directory.FindEligibleByCountry(ctx, info.CountryCode)
	if err != nil {
		d.logger.Error("business directory unavailable, skipping dispatch",
			"request_id", info.ID, "country", info.CountryCode, "error", err)
		return
	}

	matches := d.engine.Match(info, profiles)
	d.logger.Info("request matched for dispatch",
		"request_id", info.ID, "type", info.Type.String(), "matches", len(matches))

	for _, m := range matches {
		if err := d.notifier.NotifyBusiness(ctx, m.BusinessID, summary, string(m.Reason)); err != nil {
			d.logger.Warn("business notification failed",
				"request_id", info.ID, "business_id", m.BusinessID, "error", err)
		}
	}
}

// CanBusinessRespond mirrors the matching rules for a single responder. Users
// without a business profile are not subject to the gate. The submission
// endpoint applies this check to ride and delivery requests only.
func (d *Dispatcher) CanBusinessRespond(ctx context.Context, responderID uuid.UUID, reqType request.Type, countryCode string) (bool, error) {
	profile, err := d.directory.FindByOwnerID(ctx, responderID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return true, nil
	}
	return d.engine.CanRespond(*profile, reqType, countryCode), nil
}
