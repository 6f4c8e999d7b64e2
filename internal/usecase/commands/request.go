package commands

import (
	"context"

	"request-market/internal/domain/matching"
	"request-market/internal/domain/request"
	"request-market/internal/domain/user"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/pkg/errs"
	"request-market/internal/usecase/dispatch"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound         = errs.New("request not found")
	ErrResponseNotFound        = errs.New("response not found")
	ErrPermissionDenied        = errs.New("permission denied")
	ErrResponseNotLinked       = errs.New("response does not belong to this request")
	ErrNoAcceptedResponse      = errs.New("request has no accepted response")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateRequestInput struct {
	Type          string
	Pickup        string
	Destination   string
	CategoryID    *int32
	SubcategoryID *int32
	Title         string
	Description   string
	City          string
	Phone         string
	Email         string
}

type UpdateRequestInput struct {
	Title       string
	Description string
	City        string
	Phone       string
	Email       string
}

type RequestCommands interface {
	Create(ctx context.Context, in CreateRequestInput, ownerID uuid.UUID, countryCode string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateRequestInput, actorID uuid.UUID, role user.Role) error
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
	AcceptResponse(ctx context.Context, requestID, responseID uuid.UUID, actorID uuid.UUID, role user.Role) error
	ClearAccepted(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error
	MarkCompleted(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type requestCommandsImpl struct {
	requests   RequestRepository
	responses  ResponseRepository
	dispatcher *dispatch.Dispatcher
	clock      clock.Clock
}

func NewRequestCommands(
	requests RequestRepository,
	responses ResponseRepository,
	dispatcher *dispatch.Dispatcher,
	clk clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		requests:   requests,
		responses:  responses,
		dispatcher: dispatcher,
		clock:      clk,
	}
}

func (c *requestCommandsImpl) Create(ctx context.Context, in CreateRequestInput, ownerID uuid.UUID, countryCode string) (uuid.UUID, error) {
	// Unrecognized types stay empty instead of erroring so downstream default
	// categorization can pick them up.
	reqType, _ := request.NormalizeType(in.Type, request.TypeHints{
		Pickup:      in.Pickup,
		Destination: in.Destination,
	})

	entity, err := request.NewRequest(request.NewRequestParams{
		OwnerID:       ownerID,
		Type:          reqType,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		CountryCode:   countryCode,
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		Phone:         in.Phone,
		Email:         in.Email,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.requests.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Best-effort routing: dispatch failure must never roll back the create.
	c.dispatcher.DispatchNewRequest(ctx, matching.RequestInfo{
		ID:            entity.ID(),
		Type:          entity.Type(),
		CategoryID:    entity.CategoryID(),
		SubcategoryID: entity.SubcategoryID(),
		CountryCode:   entity.CountryCode(),
	}, dispatch.RequestSummary{
		ID:    entity.ID(),
		Title: entity.Title(),
		Type:  entity.Type().String(),
		City:  entity.City(),
	})

	return entity.ID(), nil
}

func (c *requestCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateRequestInput, actorID uuid.UUID, role user.Role) error {
	entity, err := c.loadOwned(ctx, id, actorID, role)
	if err != nil {
		return err
	}

	if in.Title == "" {
		return errs.Mark(request.ErrMissingTitle, ErrDomainValidation)
	}
	if in.Description == "" {
		return errs.Mark(request.ErrMissingDescription, ErrDomainValidation)
	}
	if in.City == "" {
		return errs.Mark(request.ErrMissingCity, ErrDomainValidation)
	}

	updated := request.ReconstructRequest(
		entity.ID(), entity.OwnerID(), entity.Type(),
		entity.CategoryID(), entity.SubcategoryID(),
		entity.CountryCode(), in.Title, in.Description, in.City, in.Phone, in.Email,
		entity.Status(), entity.AcceptedResponseID(),
		entity.IsUrgent(), entity.UrgentUntil(), entity.UrgentPaymentRef(),
		entity.CreatedAt(), c.clock.Now(),
	)

	if err := c.requests.Update(ctx, updated); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *requestCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error {
	if _, err := c.loadOwned(ctx, id, actorID, role); err != nil {
		return err
	}
	if err := c.requests.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *requestCommandsImpl) AcceptResponse(ctx context.Context, requestID, responseID uuid.UUID, actorID uuid.UUID, role user.Role) error {
	if _, err := c.loadOwned(ctx, requestID, actorID, role); err != nil {
		return err
	}

	res, err := c.responses.FindByID(ctx, responseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResponseNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if res.RequestID() != requestID {
		return ErrResponseNotLinked
	}

	if err := c.requests.AcceptResponse(ctx, requestID, responseID, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *requestCommandsImpl) ClearAccepted(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error {
	entity, err := c.loadOwned(ctx, requestID, actorID, role)
	if err != nil {
		return err
	}
	if entity.AcceptedResponseID() == nil {
		return ErrNoAcceptedResponse
	}

	if err := c.requests.ClearAccepted(ctx, requestID, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *requestCommandsImpl) MarkCompleted(ctx context.Context, requestID uuid.UUID, actorID uuid.UUID, role user.Role) error {
	entity, err := c.loadOwned(ctx, requestID, actorID, role)
	if err != nil {
		return err
	}

	// Repeated completion is a no-op.
	if entity.Status() == request.StatusCompleted {
		return nil
	}
	if entity.AcceptedResponseID() == nil {
		return ErrNoAcceptedResponse
	}

	if err := c.requests.MarkCompleted(ctx, requestID, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *requestCommandsImpl) loadOwned(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*request.Request, error) {
	entity, err := c.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity.OwnerID() != actorID && !role.IsPrivileged() {
		return nil, ErrPermissionDenied
	}
	return entity, nil
}
