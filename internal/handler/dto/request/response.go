package request

import (
	"request-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateResponseRequest struct {
	Message  string   `json:"message" binding:"required"`
	Price    *float64 `json:"price,omitempty"`
	Currency *string  `json:"currency,omitempty"`
}

func (r CreateResponseRequest) ToInput(requestID uuid.UUID) commands.CreateResponseInput {
	return commands.CreateResponseInput{
		RequestID: requestID,
		Message:   r.Message,
		Price:     r.Price,
		Currency:  r.Currency,
	}
}

type UpdateResponseRequest struct {
	Message  string   `json:"message" binding:"required"`
	Price    *float64 `json:"price,omitempty"`
	Currency *string  `json:"currency,omitempty"`
}

func (r UpdateResponseRequest) ToInput() commands.UpdateResponseInput {
	return commands.UpdateResponseInput{
		Message:  r.Message,
		Price:    r.Price,
		Currency: r.Currency,
	}
}
