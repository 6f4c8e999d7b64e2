package queries

import (
	"context"
	"time"

	"request-market/internal/domain/user"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/pkg/errs"
	"request-market/internal/usecase/entitlement"

	"github.com/google/uuid"
)

var ErrRequestNotFoundRead = errs.New("request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// Search returns urgent-and-unexpired requests first, then newest-first.
	// Urgency expiry is a timestamp comparison against now at query time.
	Search(ctx context.Context, filters RequestFilters, now time.Time, page Page) ([]*RequestView, int, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*RequestView, int, error)
	// RespondedRequestIDs reports which of ids the viewer has responded to.
	RespondedRequestIDs(ctx context.Context, viewerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, viewerID uuid.UUID, role user.Role) (*RequestView, error)
	Search(ctx context.Context, filters RequestFilters, page Page, viewerID uuid.UUID, role user.Role) ([]*RequestView, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*RequestView, int, error)
}

type requestQueriesImpl struct {
	store     RequestReadStore
	evaluator *entitlement.Evaluator
	clock     clock.Clock
}

func NewRequestQueries(store RequestReadStore, evaluator *entitlement.Evaluator, clk clock.Clock) RequestQueries {
	return &requestQueriesImpl{store: store, evaluator: evaluator, clock: clk}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewerID uuid.UUID, role user.Role) (*RequestView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRequestNotFoundRead)
		}
		return nil, err
	}

	viewer := q.buildViewer(ctx, viewerID, role, []uuid.UUID{id})
	responded := viewer.HasResponded
	ApplyGating(view, Viewer{ID: viewer.ID, Entitlements: viewer.Entitlements, HasResponded: responded})
	return view, nil
}

func (q *requestQueriesImpl) Search(ctx context.Context, filters RequestFilters, page Page, viewerID uuid.UUID, role user.Role) ([]*RequestView, int, error) {
	page.Limit = ValidateLimit(page.Limit)

	views, total, err := q.store.Search(ctx, filters, q.clock.Now(), page)
	if err != nil {
		return nil, 0, err
	}

	q.gateAll(ctx, views, viewerID, role)
	return views, total, nil
}

func (q *requestQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*RequestView, int, error) {
	page.Limit = ValidateLimit(page.Limit)

	views, total, err := q.store.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, 0, err
	}

	// The owner sees their own contact data; gating still stamps the flags.
	owner := Viewer{ID: ownerID}
	for _, v := range views {
		ApplyGating(v, owner)
	}
	return views, total, nil
}

func (q *requestQueriesImpl) gateAll(ctx context.Context, views []*RequestView, viewerID uuid.UUID, role user.Role) {
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	base := q.buildViewer(ctx, viewerID, role, nil)
	respondedSet := q.respondedSet(ctx, viewerID, ids)

	for _, v := range views {
		ApplyGating(v, Viewer{
			ID:           base.ID,
			Entitlements: base.Entitlements,
			HasResponded: respondedSet[v.ID],
		})
	}
}

type viewerContext struct {
	ID           uuid.UUID
	Entitlements entitlement.Entitlements
	HasResponded bool
}

func (q *requestQueriesImpl) buildViewer(ctx context.Context, viewerID uuid.UUID, role user.Role, checkIDs []uuid.UUID) viewerContext {
	vc := viewerContext{ID: viewerID}
	if viewerID == uuid.Nil {
		return vc
	}

	vc.Entitlements = q.evaluator.GetEntitlements(ctx, viewerID, role, q.clock.Now())

	if len(checkIDs) > 0 {
		set := q.respondedSet(ctx, viewerID, checkIDs)
		for _, id := range checkIDs {
			if set[id] {
				vc.HasResponded = true
				break
			}
		}
	}
	return vc
}

// respondedSet degrades to an empty set on store failure: the viewer then
// simply gets the stricter masking.
func (q *requestQueriesImpl) respondedSet(ctx context.Context, viewerID uuid.UUID, ids []uuid.UUID) map[uuid.UUID]bool {
	if viewerID == uuid.Nil || len(ids) == 0 {
		return map[uuid.UUID]bool{}
	}
	set, err := q.store.RespondedRequestIDs(ctx, viewerID, ids)
	if err != nil {
		return map[uuid.UUID]bool{}
	}
	return set
}
