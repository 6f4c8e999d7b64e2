//go:build unit

package entitlement_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"request-market/internal/domain/user"
	"request-market/internal/usecase/entitlement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	counts map[string]int
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int{}}
}

func (f *fakeCounter) key(userID uuid.UUID, period string) string {
	return userID.String() + ":" + period
}

func (f *fakeCounter) Get(_ context.Context, userID uuid.UUID, period string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[f.key(userID, period)], nil
}

func (f *fakeCounter) Increment(_ context.Context, userID uuid.UUID, period string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[f.key(userID, period)]++
	return f.counts[f.key(userID, period)], nil
}

func TestGetEntitlements(t *testing.T) {
	logger := slog.Default()
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("fresh user has full quota", func(t *testing.T) {
		eval := entitlement.NewEvaluator(newFakeCounter(), entitlement.FixedLimit(3), logger)

		ent := eval.GetEntitlements(context.Background(), userID, user.RoleUser, now)
		assert.True(t, ent.CanViewContact)
		assert.True(t, ent.CanMessage)
		assert.True(t, ent.CanRespond)
		assert.Equal(t, 0, ent.ResponsesUsed)
		assert.Equal(t, 3, ent.ResponsesLimit)
	})

	t.Run("quota exhausts at the limit", func(t *testing.T) {
		counter := newFakeCounter()
		eval := entitlement.NewEvaluator(counter, entitlement.FixedLimit(3), logger)

		for range 3 {
			require.NoError(t, eval.IncrementUsage(context.Background(), userID, now))
		}

		ent := eval.GetEntitlements(context.Background(), userID, user.RoleUser, now)
		assert.False(t, ent.CanViewContact)
		assert.False(t, ent.CanMessage)
		assert.False(t, ent.CanRespond)
		assert.Equal(t, 3, ent.ResponsesUsed)
	})

	t.Run("new month resets the window", func(t *testing.T) {
		counter := newFakeCounter()
		eval := entitlement.NewEvaluator(counter, entitlement.FixedLimit(3), logger)

		for range 3 {
			require.NoError(t, eval.IncrementUsage(context.Background(), userID, now))
		}

		nextMonth := now.AddDate(0, 1, 0)
		ent := eval.GetEntitlements(context.Background(), userID, user.RoleUser, nextMonth)
		assert.True(t, ent.CanRespond)
		assert.Equal(t, 0, ent.ResponsesUsed)
	})

	t.Run("counter outage degrades permissively", func(t *testing.T) {
		counter := newFakeCounter()
		counter.err = errors.New("connection refused")
		eval := entitlement.NewEvaluator(counter, entitlement.FixedLimit(3), logger)

		ent := eval.GetEntitlements(context.Background(), userID, user.RoleUser, now)
		assert.True(t, ent.CanViewContact)
		assert.True(t, ent.CanMessage)
		assert.True(t, ent.CanRespond)
		assert.Equal(t, 0, ent.ResponsesUsed)
	})

	t.Run("increment failure is marked", func(t *testing.T) {
		counter := newFakeCounter()
		counter.err = errors.New("connection refused")
		eval := entitlement.NewEvaluator(counter, entitlement.FixedLimit(3), logger)

		err := eval.IncrementUsage(context.Background(), userID, now)
		assert.ErrorIs(t, err, entitlement.ErrCounterUnavailable)
	})
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2025-03", entitlement.PeriodKey(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)))
	// period boundaries are UTC regardless of the input zone
	loc := time.FixedZone("UTC+5", 5*3600)
	assert.Equal(t, "2025-02", entitlement.PeriodKey(time.Date(2025, time.March, 1, 2, 0, 0, 0, loc)))
}
