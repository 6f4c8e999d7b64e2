package commands

import (
	"context"
	"log/slog"

	"request-market/internal/domain/request"
	"request-market/internal/domain/user"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentUnavailable = errs.New("payment gateway unavailable")
	ErrPaymentNotPending  = errs.New("payment reference is not pending for this request")
	ErrBoostNotConfigured = errs.New("urgent boost is not configured for this country")
)

type UrgentBoostOrder struct {
	RequestID  uuid.UUID `json:"request_id"`
	PaymentRef string    `json:"payment_ref"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
}

type UrgentBoostCommands interface {
	// Start creates a pending payment transaction at the fixed per-country
	// price. The boost itself only activates on Confirm.
	Start(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) (*UrgentBoostOrder, error)
	// Confirm reacts to the payment-settlement signal. The reference must be
	// a pending ledger entry issued by Start for this request; it is settled
	// in the same flow.
	Confirm(ctx context.Context, requestID uuid.UUID, paymentRef string) error
	Clear(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type urgentBoostCommandsImpl struct {
	requests RequestRepository
	payments PaymentGateway
	config   CountryConfigStore
	clock    clock.Clock
	logger   *slog.Logger
}

func NewUrgentBoostCommands(
	requests RequestRepository,
	payments PaymentGateway,
	config CountryConfigStore,
	clk clock.Clock,
	logger *slog.Logger,
) UrgentBoostCommands {
	return &urgentBoostCommandsImpl{
		requests: requests,
		payments: payments,
		config:   config,
		clock:    clk,
		logger:   logger,
	}
}

func (c *urgentBoostCommandsImpl) Start(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) (*UrgentBoostOrder, error) {
	entity, err := c.loadOwned(ctx, requestID, actorID, role)
	if err != nil {
		return nil, err
	}

	amount, currency, err := c.config.UrgentBoostPrice(ctx, entity.CountryCode())
	if err != nil {
		return nil, errs.Mark(err, ErrBoostNotConfigured)
	}

	ref, err := c.payments.CreateTransaction(ctx, requestID, amount, currency)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentUnavailable)
	}

	c.logger.Info("urgent boost payment started",
		"request_id", requestID, "amount", amount, "currency", currency, "payment_ref", ref)

	return &UrgentBoostOrder{
		RequestID:  requestID,
		PaymentRef: ref,
		Amount:     amount,
		Currency:   currency,
	}, nil
}

func (c *urgentBoostCommandsImpl) Confirm(ctx context.Context, requestID uuid.UUID, paymentRef string) error {
	entity, err := c.requests.FindByID(ctx, requestID)
	if err != nil {
		return c.mapLoadErr(err)
	}

	// The ledger is the authorization: without a pending transaction issued
	// by Start for this request, the reference buys nothing.
	if err := c.payments.SettleTransaction(ctx, paymentRef, requestID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentNotPending
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity.ConfirmUrgentBoost(paymentRef, c.clock.Now())
	if err := c.requests.UpdateUrgentBoost(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.logger.Info("urgent boost activated",
		"request_id", requestID, "payment_ref", paymentRef)
	return nil
}

func (c *urgentBoostCommandsImpl) Clear(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error {
	entity, err := c.loadOwned(ctx, requestID, actorID, role)
	if err != nil {
		return err
	}

	entity.ClearUrgentBoost(c.clock.Now())
	if err := c.requests.UpdateUrgentBoost(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *urgentBoostCommandsImpl) loadOwned(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*request.Request, error) {
	entity, err := c.requests.FindByID(ctx, id)
	if err != nil {
		return nil, c.mapLoadErr(err)
	}
	if entity.OwnerID() != actorID && !role.IsPrivileged() {
		return nil, ErrPermissionDenied
	}
	return entity, nil
}

func (c *urgentBoostCommandsImpl) mapLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRequestNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
