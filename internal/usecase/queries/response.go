package queries

import (
	"context"

	"github.com/google/uuid"
)

type ResponseReadStore interface {
	FindByRequest(ctx context.Context, requestID uuid.UUID, page Page) ([]*ResponseView, int, error)
	FindByRequestAndResponder(ctx context.Context, requestID, responderID uuid.UUID) (*ResponseView, error)
	RequestOwner(ctx context.Context, requestID uuid.UUID) (uuid.UUID, error)
}

type ResponseQueries interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID, viewerID uuid.UUID, page Page) ([]*ResponseView, int, error)
}

type responseQueriesImpl struct {
	store ResponseReadStore
}

func NewResponseQueries(store ResponseReadStore) ResponseQueries {
	return &responseQueriesImpl{store: store}
}

// ListByRequest enforces the responder privacy rule: the request owner sees
// every response newest-first; any other authenticated viewer sees only their
// own submission; anonymous viewers see nothing. Non-owners must never see
// other responders' submissions.
func (q *responseQueriesImpl) ListByRequest(ctx context.Context, requestID uuid.UUID, viewerID uuid.UUID, page Page) ([]*ResponseView, int, error) {
	if viewerID == uuid.Nil {
		return []*ResponseView{}, 0, nil
	}

	ownerID, err := q.store.RequestOwner(ctx, requestID)
	if err != nil {
		return nil, 0, err
	}

	if viewerID == ownerID {
		page.Limit = ValidateLimit(page.Limit)
		return q.store.FindByRequest(ctx, requestID, page)
	}

	own, err := q.store.FindByRequestAndResponder(ctx, requestID, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if own == nil {
		return []*ResponseView{}, 0, nil
	}
	return []*ResponseView{own}, 1, nil
}
