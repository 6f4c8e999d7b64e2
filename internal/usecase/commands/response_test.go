//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"request-market/internal/domain/business"
	"request-market/internal/domain/matching"
	"request-market/internal/domain/request"
	"request-market/internal/domain/response"
	"request-market/internal/infra"
	"request-market/internal/pkg/clock"
	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/dispatch"
	"request-market/internal/usecase/entitlement"
	"request-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	requests map[uuid.UUID]*request.Request
	findErr  error
}

func newFakeRequestRepo(reqs ...*request.Request) *fakeRequestRepo {
	m := map[uuid.UUID]*request.Request{}
	for _, r := range reqs {
		m[r.ID()] = r
	}
	return &fakeRequestRepo{requests: m}
}

func (f *fakeRequestRepo) Create(_ context.Context, req *request.Request) error {
	f.requests[req.ID()] = req
	return nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*request.Request, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	req, ok := f.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return req, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, req *request.Request) error { return nil }
func (f *fakeRequestRepo) Delete(_ context.Context, id uuid.UUID) error         { return nil }
func (f *fakeRequestRepo) AcceptResponse(_ context.Context, requestID, responseID uuid.UUID, _ time.Time) error {
	return nil
}
func (f *fakeRequestRepo) ClearAccepted(_ context.Context, requestID uuid.UUID, _ time.Time) error {
	return nil
}
func (f *fakeRequestRepo) MarkCompleted(_ context.Context, requestID uuid.UUID, _ time.Time) error {
	return nil
}
func (f *fakeRequestRepo) UpdateUrgentBoost(_ context.Context, req *request.Request) error {
	return nil
}

type fakeResponseRepo struct {
	responses map[uuid.UUID]*response.Response
	createErr error
	deleted   []uuid.UUID
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: map[uuid.UUID]*response.Response{}}
}

func (f *fakeResponseRepo) Create(_ context.Context, res *response.Response) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.responses[res.ID()] = res
	return nil
}

func (f *fakeResponseRepo) FindByID(_ context.Context, id uuid.UUID) (*response.Response, error) {
	res, ok := f.responses[id]
	if !ok {
		return nil, infra.WrapRepoErr("response not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (f *fakeResponseRepo) Update(_ context.Context, res *response.Response) error {
	f.responses[res.ID()] = res
	return nil
}

func (f *fakeResponseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.responses, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDirectory struct {
	profile *business.Profile
	err     error
}

func (f *fakeDirectory) FindEligibleByCountry(_ context.Context, _ string) ([]business.Profile, error) {
	return nil, nil
}

func (f *fakeDirectory) FindByOwnerID(_ context.Context, _ uuid.UUID) (*business.Profile, error) {
	return f.profile, f.err
}

type fakeNotifier struct {
	ownerNotified int
}

func (f *fakeNotifier) NotifyBusiness(_ context.Context, _ uuid.UUID, _ dispatch.RequestSummary, _ string) error {
	return nil
}

func (f *fakeNotifier) NotifyRequestOwner(_ context.Context, _, _, _ uuid.UUID) error {
	f.ownerNotified++
	return nil
}

type recordingCounter struct {
	increments int
	err        error
}

func (c *recordingCounter) Get(_ context.Context, _ uuid.UUID, _ string) (int, error) {
	return 0, c.err
}

func (c *recordingCounter) Increment(_ context.Context, _ uuid.UUID, _ string) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.increments++
	return c.increments, nil
}

type responseCommandsFixture struct {
	requests  *fakeRequestRepo
	responses *fakeResponseRepo
	directory *fakeDirectory
	notifier  *fakeNotifier
	counter   *recordingCounter
	commands  commands.ResponseCommands
}

func newResponseCommandsFixture(t *testing.T, reqs ...*request.Request) *responseCommandsFixture {
	t.Helper()
	logger := slog.Default()

	f := &responseCommandsFixture{
		requests:  newFakeRequestRepo(reqs...),
		responses: newFakeResponseRepo(),
		directory: &fakeDirectory{},
		notifier:  &fakeNotifier{},
		counter:   &recordingCounter{},
	}

	engine := matching.NewEngine(business.NewDefaultClassificationSource())
	dispatcher := dispatch.NewDispatcher(f.directory, engine, f.notifier, logger)
	evaluator := entitlement.NewEvaluator(f.counter, entitlement.FixedLimit(3), logger)
	clk := clock.NewMockClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))

	f.commands = commands.NewResponseCommands(
		f.requests, f.responses, dispatcher, f.notifier, evaluator, f.directory, clk, logger,
	)
	return f
}

func buildRequest(t *testing.T, b *builder.RequestBuilder) *request.Request {
	t.Helper()
	req, err := b.BuildDomain()
	require.NoError(t, err)
	return req
}

func TestResponseCommands_Create(t *testing.T) {
	ctx := context.Background()
	responderID := uuid.New()

	input := func(requestID uuid.UUID) commands.CreateResponseInput {
		return builder.NewResponseBuilder().WithRequestID(requestID).BuildCreateRequestDTO().ToInput(requestID)
	}

	t.Run("creates the response, notifies the owner and counts usage", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)

		id, err := f.commands.Create(ctx, input(req.ID()), responderID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 1, f.notifier.ownerNotified)
		assert.Equal(t, 1, f.counter.increments)
	})

	t.Run("subscribed businesses are not counted", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)
		profile := builder.NewProfileBuilder().WithSubscribed(true).Build()
		f.directory.profile = &profile

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		require.NoError(t, err)
		assert.Equal(t, 0, f.counter.increments)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newResponseCommandsFixture(t)

		_, err := f.commands.Create(ctx, input(uuid.New()), responderID)
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("closed request", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		req.Accept(uuid.New(), time.Now())
		f := newResponseCommandsFixture(t, req)

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.ErrorIs(t, err, commands.ErrRequestNotActive)
	})

	t.Run("own request", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().WithOwnerID(responderID))
		f := newResponseCommandsFixture(t, req)

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.ErrorIs(t, err, commands.ErrOwnRequest)
	})

	t.Run("duplicate submission surfaces as already responded", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)
		f.responses.createErr = infra.WrapRepoErr("unique violation", nil, infra.KindDuplicateKey)

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.ErrorIs(t, err, commands.ErrAlreadyResponded)
	})

	t.Run("empty message fails domain validation", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)

		in := input(req.ID())
		in.Message = "   "
		_, err := f.commands.Create(ctx, in, responderID)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("delivery requests gate on classification", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().AsDelivery())
		f := newResponseCommandsFixture(t, req)
		profile := builder.NewProfileBuilder().WithTypeNames("handyman").Build()
		f.directory.profile = &profile

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.ErrorIs(t, err, commands.ErrCapabilityDenied)
	})

	t.Run("delivery-classified businesses pass the gate", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().AsDelivery())
		f := newResponseCommandsFixture(t, req)
		profile := builder.NewProfileBuilder().WithTypeNames("delivery").Build()
		f.directory.profile = &profile

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.NoError(t, err)
	})

	t.Run("users without a business profile are not gated", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().AsDelivery())
		f := newResponseCommandsFixture(t, req)

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.NoError(t, err)
	})

	t.Run("gate outage allows the submission", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder().AsDelivery())
		f := newResponseCommandsFixture(t, req)
		f.directory.err = errors.New("directory unavailable")

		_, err := f.commands.Create(ctx, input(req.ID()), responderID)
		assert.NoError(t, err)
	})

	t.Run("counter outage does not fail the submission", func(t *testing.T) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)
		f.counter.err = errors.New("connection refused")

		id, err := f.commands.Create(ctx, input(req.ID()), responderID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}

func TestResponseCommands_Update(t *testing.T) {
	ctx := context.Background()
	responderID := uuid.New()

	setup := func(t *testing.T) (*responseCommandsFixture, *request.Request, uuid.UUID) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)
		in := builder.NewResponseBuilder().WithRequestID(req.ID()).BuildCreateRequestDTO().ToInput(req.ID())
		id, err := f.commands.Create(ctx, in, responderID)
		require.NoError(t, err)
		return f, req, id
	}

	update := commands.UpdateResponseInput{Message: "Revised offer, can start today."}

	t.Run("responder edits their own response", func(t *testing.T) {
		f, _, id := setup(t)

		err := f.commands.Update(ctx, id, update, responderID)
		require.NoError(t, err)
		assert.Equal(t, update.Message, f.responses.responses[id].Message())
	})

	t.Run("only the responder may edit", func(t *testing.T) {
		f, _, id := setup(t)

		err := f.commands.Update(ctx, id, update, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("accepted responses are frozen", func(t *testing.T) {
		f, req, id := setup(t)
		req.Accept(id, time.Now())

		err := f.commands.Update(ctx, id, update, responderID)
		assert.ErrorIs(t, err, commands.ErrResponseAccepted)
	})

	t.Run("missing response", func(t *testing.T) {
		f, _, _ := setup(t)

		err := f.commands.Update(ctx, uuid.New(), update, responderID)
		assert.ErrorIs(t, err, commands.ErrResponseNotFound)
	})
}

func TestResponseCommands_Delete(t *testing.T) {
	ctx := context.Background()
	responderID := uuid.New()

	setup := func(t *testing.T) (*responseCommandsFixture, *request.Request, uuid.UUID) {
		req := buildRequest(t, builder.NewRequestBuilder())
		f := newResponseCommandsFixture(t, req)
		in := builder.NewResponseBuilder().WithRequestID(req.ID()).BuildCreateRequestDTO().ToInput(req.ID())
		id, err := f.commands.Create(ctx, in, responderID)
		require.NoError(t, err)
		return f, req, id
	}

	t.Run("responder withdraws their response", func(t *testing.T) {
		f, _, id := setup(t)

		err := f.commands.Delete(ctx, id, responderID, "user")
		require.NoError(t, err)
		assert.Contains(t, f.deletedIDs(), id)
	})

	t.Run("request owner removes a response", func(t *testing.T) {
		f, req, id := setup(t)

		err := f.commands.Delete(ctx, id, req.OwnerID(), "user")
		assert.NoError(t, err)
	})

	t.Run("strangers may not delete", func(t *testing.T) {
		f, _, id := setup(t)

		err := f.commands.Delete(ctx, id, uuid.New(), "user")
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("admins may delete", func(t *testing.T) {
		f, _, id := setup(t)

		err := f.commands.Delete(ctx, id, uuid.New(), "admin")
		assert.NoError(t, err)
	})

	t.Run("responder cannot withdraw an accepted response", func(t *testing.T) {
		f, req, id := setup(t)
		req.Accept(id, time.Now())

		err := f.commands.Delete(ctx, id, responderID, "user")
		assert.ErrorIs(t, err, commands.ErrResponseAccepted)
	})

	t.Run("owner must clear the acceptance first", func(t *testing.T) {
		f, req, id := setup(t)
		req.Accept(id, time.Now())

		err := f.commands.Delete(ctx, id, req.OwnerID(), "user")
		assert.ErrorIs(t, err, commands.ErrAcceptanceNotCleared)
	})
}

func (f *responseCommandsFixture) deletedIDs() []uuid.UUID {
	return f.responses.deleted
}
