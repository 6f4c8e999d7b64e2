package response

import (
	"strings"
	"time"

	"request-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errs.New("message is required")
	ErrOwnRequest   = errs.New("cannot respond to your own request")
)

type Status string

// Responses are hard-deleted, so active is the only persisted status.
const StatusActive Status = "active"

type Response struct {
	id          uuid.UUID
	requestID   uuid.UUID
	responderID uuid.UUID
	message     string
	price       *float64
	currency    *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewResponse validates the submission against the owning request. Uniqueness
// of (requestID, responderID) is a store constraint, not checked here.
func NewResponse(requestID, responderID, requestOwnerID uuid.UUID, message string, price *float64, currency *string, now time.Time) (*Response, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if responderID == requestOwnerID {
		return nil, ErrOwnRequest
	}

	return &Response{
		id:          uuid.New(),
		requestID:   requestID,
		responderID: responderID,
		message:     message,
		price:       price,
		currency:    currency,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructResponse(
	id, requestID, responderID uuid.UUID,
	message string,
	price *float64,
	currency *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Response {
	return &Response{
		id:          id,
		requestID:   requestID,
		responderID: responderID,
		message:     message,
		price:       price,
		currency:    currency,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Response) Edit(message string, price *float64, currency *string, now time.Time) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}
	r.message = message
	r.price = price
	r.currency = currency
	r.updatedAt = now
	return nil
}

func (r *Response) ID() uuid.UUID          { return r.id }
func (r *Response) RequestID() uuid.UUID   { return r.requestID }
func (r *Response) ResponderID() uuid.UUID { return r.responderID }
func (r *Response) Message() string        { return r.message }
func (r *Response) Price() *float64        { return r.price }
func (r *Response) Currency() *string      { return r.currency }
func (r *Response) Status() Status         { return r.status }
func (r *Response) CreatedAt() time.Time   { return r.createdAt }
func (r *Response) UpdatedAt() time.Time   { return r.updatedAt }
