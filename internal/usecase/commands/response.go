package commands

import (
	"context"
	"log/slog"

	"request-market/internal/domain/request"
	"request-market/internal/domain/response"
	"request-market/internal/domain/user"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/pkg/errs"
	"request-market/internal/usecase/dispatch"
	"request-market/internal/usecase/entitlement"

	"github.com/google/uuid"
)

var (
	ErrRequestNotActive     = errs.New("cannot respond to a request that is not active")
	ErrOwnRequest           = errs.New("cannot respond to your own request")
	ErrAlreadyResponded     = errs.New("you have already responded to this request")
	ErrResponseAccepted     = errs.New("accepted response cannot be modified")
	ErrAcceptanceNotCleared = errs.New("acceptance must be cleared before deleting the response")
	ErrCapabilityDenied     = errs.New("business cannot respond to this request type")
)

type CreateResponseInput struct {
	RequestID uuid.UUID
	Message   string
	Price     *float64
	Currency  *string
}

type UpdateResponseInput struct {
	Message  string
	Price    *float64
	Currency *string
}

type ResponseCommands interface {
	Create(ctx context.Context, in CreateResponseInput, responderID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateResponseInput, actorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type responseCommandsImpl struct {
	requests   RequestRepository
	responses  ResponseRepository
	dispatcher *dispatch.Dispatcher
	notifier   dispatch.Notifier
	evaluator  *entitlement.Evaluator
	directory  dispatch.BusinessDirectory
	clock      clock.Clock
	logger     *slog.Logger
}

func NewResponseCommands(
	requests RequestRepository,
	responses ResponseRepository,
	dispatcher *dispatch.Dispatcher,
	notifier dispatch.Notifier,
	evaluator *entitlement.Evaluator,
	directory dispatch.BusinessDirectory,
	clk clock.Clock,
	logger *slog.Logger,
) ResponseCommands {
	return &responseCommandsImpl{
		requests:   requests,
		responses:  responses,
		dispatcher: dispatcher,
		notifier:   notifier,
		evaluator:  evaluator,
		directory:  directory,
		clock:      clk,
		logger:     logger,
	}
}

func (c *responseCommandsImpl) Create(ctx context.Context, in CreateResponseInput, responderID uuid.UUID) (uuid.UUID, error) {
	req, err := c.requests.FindByID(ctx, in.RequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrRequestNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !req.IsActive() {
		return uuid.Nil, ErrRequestNotActive
	}
	if req.OwnerID() == responderID {
		return uuid.Nil, ErrOwnRequest
	}

	// Capability gate is enforced at submission for ride and delivery only;
	// common types rely on the matching-time filter.
	if req.Type() == request.TypeRide || req.Type() == request.TypeDelivery {
		allowed, gateErr := c.dispatcher.CanBusinessRespond(ctx, responderID, req.Type(), req.CountryCode())
		if gateErr != nil {
			c.logger.Warn("capability gate unavailable, allowing submission",
				"request_id", in.RequestID, "responder_id", responderID, "error", gateErr)
		} else if !allowed {
			return uuid.Nil, ErrCapabilityDenied
		}
	}

	entity, err := response.NewResponse(in.RequestID, responderID, req.OwnerID(), in.Message, in.Price, in.Currency, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.responses.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrAlreadyResponded
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.notifier.NotifyRequestOwner(ctx, req.OwnerID(), req.ID(), entity.ID()); err != nil {
		c.logger.Warn("owner notification failed",
			"request_id", req.ID(), "response_id", entity.ID(), "error", err)
	}

	c.countUsage(ctx, responderID)

	return entity.ID(), nil
}

// countUsage increments the monthly counter for responders without an active
// paid subscription. Counter failures degrade silently; quota enforcement
// never blocks a submission that already persisted.
func (c *responseCommandsImpl) countUsage(ctx context.Context, responderID uuid.UUID) {
	profile, err := c.directory.FindByOwnerID(ctx, responderID)
	if err != nil {
		c.logger.Warn("business directory lookup failed, counting usage",
			"responder_id", responderID, "error", err)
	}
	if profile != nil && profile.Subscribed {
		return
	}

	if err := c.evaluator.IncrementUsage(ctx, responderID, c.clock.Now()); err != nil {
		c.logger.Warn("usage increment failed",
			"responder_id", responderID, "error", err)
	}
}

func (c *responseCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateResponseInput, actorID uuid.UUID) error {
	entity, err := c.findResponse(ctx, id)
	if err != nil {
		return err
	}
	if entity.ResponderID() != actorID {
		return ErrPermissionDenied
	}

	accepted, err := c.isAccepted(ctx, entity)
	if err != nil {
		return err
	}
	if accepted {
		return ErrResponseAccepted
	}

	if err := entity.Edit(in.Message, in.Price, in.Currency, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := c.responses.Update(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *responseCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error {
	entity, err := c.findResponse(ctx, id)
	if err != nil {
		return err
	}

	req, err := c.requests.FindByID(ctx, entity.RequestID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	isResponder := entity.ResponderID() == actorID
	isOwner := req.OwnerID() == actorID
	if !isResponder && !isOwner && !role.IsPrivileged() {
		return ErrPermissionDenied
	}

	// An accepted response is pinned: the responder can never remove it, and
	// the owner must clear the acceptance first so the pointer is not
	// silently orphaned.
	if req.AcceptedResponseID() != nil && *req.AcceptedResponseID() == entity.ID() {
		if isResponder && !isOwner {
			return ErrResponseAccepted
		}
		return ErrAcceptanceNotCleared
	}

	if err := c.responses.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *responseCommandsImpl) findResponse(ctx context.Context, id uuid.UUID) (*response.Response, error) {
	entity, err := c.responses.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *responseCommandsImpl) isAccepted(ctx context.Context, res *response.Response) (bool, error) {
	req, err := c.requests.FindByID(ctx, res.RequestID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrRequestNotFound
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return req.AcceptedResponseID() != nil && *req.AcceptedResponseID() == res.ID(), nil
}
