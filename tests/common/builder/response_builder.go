//go:build unit || e2e

package builder

import (
	"time"

	domresponse "request-market/internal/domain/response"
	reqdto "request-market/internal/handler/dto/request"
	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResponseBuilder struct {
	RequestID      uuid.UUID
	ResponderID    uuid.UUID
	RequestOwnerID uuid.UUID
	Message        string
	Price          *float64
	Currency       *string
	CreatedAt      time.Time
}

func NewResponseBuilder() *ResponseBuilder {
	price := 120.0
	currency := "USD"
	return &ResponseBuilder{
		RequestID:      uuid.New(),
		ResponderID:    uuid.New(),
		RequestOwnerID: uuid.New(),
		Message:        "I can take care of this tomorrow.",
		Price:          &price,
		Currency:       &currency,
		CreatedAt:      time.Now(),
	}
}

func (b *ResponseBuilder) With(mutate func(*ResponseBuilder)) *ResponseBuilder {
	mutate(b)
	return b
}

func (b *ResponseBuilder) BuildDomain() (*domresponse.Response, error) {
	return domresponse.NewResponse(b.RequestID, b.ResponderID, b.RequestOwnerID, b.Message, b.Price, b.Currency, b.CreatedAt)
}

func (b *ResponseBuilder) BuildView() *queries.ResponseView {
	return &queries.ResponseView{
		ID:          uuid.New(),
		RequestID:   b.RequestID,
		ResponderID: b.ResponderID,
		Message:     b.Message,
		Price:       b.Price,
		Currency:    b.Currency,
		Status:      string(domresponse.StatusActive),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *ResponseBuilder) BuildCreateRequestDTO() reqdto.CreateResponseRequest {
	return reqdto.CreateResponseRequest{
		Message:  b.Message,
		Price:    b.Price,
		Currency: b.Currency,
	}
}

func (b *ResponseBuilder) BuildUpdateRequestDTO() reqdto.UpdateResponseRequest {
	return reqdto.UpdateResponseRequest{
		Message:  b.Message,
		Price:    b.Price,
		Currency: b.Currency,
	}
}

// Fluent builder methods
func (b *ResponseBuilder) WithRequestID(id uuid.UUID) *ResponseBuilder {
	b.RequestID = id
	return b
}

func (b *ResponseBuilder) WithResponderID(id uuid.UUID) *ResponseBuilder {
	b.ResponderID = id
	return b
}

func (b *ResponseBuilder) WithRequestOwnerID(id uuid.UUID) *ResponseBuilder {
	b.RequestOwnerID = id
	return b
}

func (b *ResponseBuilder) WithMessage(message string) *ResponseBuilder {
	b.Message = message
	return b
}
