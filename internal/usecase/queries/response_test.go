//go:build unit

package queries_test

import (
	"context"
	"testing"

	"request-market/internal/usecase/queries"
	"request-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponseStore struct {
	ownerID uuid.UUID
	all     []*queries.ResponseView
	own     *queries.ResponseView
}

func (f *fakeResponseStore) FindByRequest(_ context.Context, _ uuid.UUID, _ queries.Page) ([]*queries.ResponseView, int, error) {
	return f.all, len(f.all), nil
}

func (f *fakeResponseStore) FindByRequestAndResponder(_ context.Context, _ uuid.UUID, responderID uuid.UUID) (*queries.ResponseView, error) {
	if f.own != nil && f.own.ResponderID == responderID {
		return f.own, nil
	}
	return nil, nil
}

func (f *fakeResponseStore) RequestOwner(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	return f.ownerID, nil
}

func TestListByRequest(t *testing.T) {
	ownerID := uuid.New()
	responderID := uuid.New()
	requestID := uuid.New()

	own := builder.NewResponseBuilder().WithRequestID(requestID).WithResponderID(responderID).BuildView()
	other := builder.NewResponseBuilder().WithRequestID(requestID).BuildView()

	store := &fakeResponseStore{
		ownerID: ownerID,
		all:     []*queries.ResponseView{own, other},
		own:     own,
	}
	q := queries.NewResponseQueries(store)

	t.Run("owner sees every response", func(t *testing.T) {
		views, total, err := q.ListByRequest(context.Background(), requestID, ownerID, queries.Page{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, views, 2)
	})

	t.Run("responder sees only their own submission", func(t *testing.T) {
		views, total, err := q.ListByRequest(context.Background(), requestID, responderID, queries.Page{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, views, 1)
		assert.Equal(t, responderID, views[0].ResponderID)
	})

	t.Run("stranger sees nothing", func(t *testing.T) {
		views, total, err := q.ListByRequest(context.Background(), requestID, uuid.New(), queries.Page{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, views)
	})

	t.Run("anonymous viewer sees nothing", func(t *testing.T) {
		views, total, err := q.ListByRequest(context.Background(), requestID, uuid.Nil, queries.Page{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, views)
	})
}
