//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"request-market/internal/domain/request"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/usecase/commands"
	"request-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayments struct {
	ref     string
	err     error
	pending map[string]uuid.UUID
	settled map[string]uuid.UUID
}

func (f *fakePayments) CreateTransaction(_ context.Context, requestID uuid.UUID, _ float64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.pending == nil {
		f.pending = make(map[string]uuid.UUID)
	}
	f.pending[f.ref] = requestID
	return f.ref, nil
}

func (f *fakePayments) SettleTransaction(_ context.Context, ref string, requestID uuid.UUID) error {
	reqID, ok := f.pending[ref]
	if !ok || reqID != requestID {
		return infra.WrapRepoErr("payment transaction is not pending", nil, infra.KindNotFound)
	}
	delete(f.pending, ref)
	if f.settled == nil {
		f.settled = make(map[string]uuid.UUID)
	}
	f.settled[ref] = requestID
	return nil
}

type fakeCountryConfig struct {
	amount   float64
	currency string
	err      error
}

func (f *fakeCountryConfig) UrgentBoostPrice(_ context.Context, _ string) (float64, string, error) {
	return f.amount, f.currency, f.err
}

func (f *fakeCountryConfig) SetUrgentBoostPrice(_ context.Context, _ string, _ float64, _ string) error {
	return nil
}

type urgentFixture struct {
	requests *fakeRequestRepo
	payments *fakePayments
	config   *fakeCountryConfig
	clock    *clock.MockClock
	commands commands.UrgentBoostCommands
}

func newUrgentFixture(t *testing.T, reqs ...*request.Request) *urgentFixture {
	t.Helper()
	f := &urgentFixture{
		requests: newFakeRequestRepo(reqs...),
		payments: &fakePayments{ref: "ub_test_ref"},
		config:   &fakeCountryConfig{amount: 9.99, currency: "USD"},
		clock:    clock.NewMockClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewUrgentBoostCommands(f.requests, f.payments, f.config, f.clock, slog.Default())
	return f
}

func TestUrgentBoostCommands_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending order at the country price", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		order, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		require.NoError(t, err)
		assert.Equal(t, req.ID(), order.RequestID)
		assert.Equal(t, "ub_test_ref", order.PaymentRef)
		assert.Equal(t, 9.99, order.Amount)
		assert.Equal(t, "USD", order.Currency)

		// start alone must not activate the boost
		assert.False(t, req.IsUrgent())
	})

	t.Run("only the owner or an admin may start", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		_, err := f.commands.Start(ctx, req.ID(), uuid.New(), "user")
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)

		_, err = f.commands.Start(ctx, req.ID(), uuid.New(), "admin")
		assert.NoError(t, err)
	})

	t.Run("unconfigured country", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().WithCountryCode("ZZ"))
		f := newUrgentFixture(t, req)
		f.config.err = errors.New("no settings row")

		_, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		assert.ErrorIs(t, err, commands.ErrBoostNotConfigured)
	})

	t.Run("payment gateway outage", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)
		f.payments.err = errors.New("gateway timeout")

		_, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		assert.ErrorIs(t, err, commands.ErrPaymentUnavailable)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newUrgentFixture(t)

		_, err := f.commands.Start(ctx, uuid.New(), uuid.New(), "user")
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}

func TestUrgentBoostCommands_ConfirmAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm settles the pending payment and activates the boost window", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		order, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		require.NoError(t, err)

		require.NoError(t, f.commands.Confirm(ctx, req.ID(), order.PaymentRef))
		assert.True(t, req.IsUrgent())
		require.NotNil(t, req.UrgentUntil())
		assert.Equal(t, f.clock.Now().Add(request.UrgentBoostDuration), *req.UrgentUntil())
		assert.Equal(t, req.ID(), f.payments.settled[order.PaymentRef])
	})

	t.Run("confirm rejects a reference that was never issued", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		err := f.commands.Confirm(ctx, req.ID(), "ub_made_up")
		assert.ErrorIs(t, err, commands.ErrPaymentNotPending)
		assert.False(t, req.IsUrgent())
	})

	t.Run("confirm rejects a reference issued for another request", func(t *testing.T) {
		paid := buildRequest(t, builder.NewRequestBuilder())
		other := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, paid, other)

		order, err := f.commands.Start(ctx, paid.ID(), paid.OwnerID(), "user")
		require.NoError(t, err)

		err = f.commands.Confirm(ctx, other.ID(), order.PaymentRef)
		assert.ErrorIs(t, err, commands.ErrPaymentNotPending)
		assert.False(t, other.IsUrgent())
	})

	t.Run("confirm rejects an already settled reference", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		order, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		require.NoError(t, err)
		require.NoError(t, f.commands.Confirm(ctx, req.ID(), order.PaymentRef))

		err = f.commands.Confirm(ctx, req.ID(), order.PaymentRef)
		assert.ErrorIs(t, err, commands.ErrPaymentNotPending)
	})

	t.Run("clear resets the boost", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)
		order, err := f.commands.Start(ctx, req.ID(), req.OwnerID(), "user")
		require.NoError(t, err)
		require.NoError(t, f.commands.Confirm(ctx, req.ID(), order.PaymentRef))

		require.NoError(t, f.commands.Clear(ctx, req.ID(), req.OwnerID(), "user"))
		assert.False(t, req.IsUrgent())
		assert.Nil(t, req.UrgentUntil())
	})

	t.Run("clear requires ownership", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newUrgentFixture(t, req)

		err := f.commands.Clear(ctx, req.ID(), uuid.New(), "user")
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})
}
