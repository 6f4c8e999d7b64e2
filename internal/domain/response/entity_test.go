//go:build unit

package response_test

import (
	"testing"
	"time"

	"request-market/internal/domain/response"
	"request-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewResponseBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, response.StatusActive, actual.Status())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("message is trimmed", func(t *testing.T) {
		actual, err := builder.NewResponseBuilder().WithMessage("  I can help  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "I can help", actual.Message())
	})

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := builder.NewResponseBuilder().WithMessage("   ").BuildDomain()
		assert.ErrorIs(t, err, response.ErrEmptyMessage)
	})

	t.Run("owner cannot respond to own request", func(t *testing.T) {
		ownerID := uuid.New()
		_, err := builder.NewResponseBuilder().
			WithResponderID(ownerID).
			WithRequestOwnerID(ownerID).
			BuildDomain()
		assert.ErrorIs(t, err, response.ErrOwnRequest)
	})
}

func TestEdit(t *testing.T) {
	t.Run("edit replaces message and price", func(t *testing.T) {
		res, err := builder.NewResponseBuilder().BuildDomain()
		require.NoError(t, err)

		price := 99.0
		currency := "EUR"
		now := time.Now().Add(time.Minute)
		require.NoError(t, res.Edit("Updated offer", &price, &currency, now))

		assert.Equal(t, "Updated offer", res.Message())
		assert.Equal(t, &price, res.Price())
		assert.Equal(t, now, res.UpdatedAt())
	})

	t.Run("edit rejects empty message", func(t *testing.T) {
		res, err := builder.NewResponseBuilder().BuildDomain()
		require.NoError(t, err)

		err = res.Edit("  ", nil, nil, time.Now())
		assert.ErrorIs(t, err, response.ErrEmptyMessage)
	})
}
