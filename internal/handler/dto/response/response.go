package response

import (
	"time"

	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResponseResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"requestId"`
	ResponderID uuid.UUID `json:"responderId"`
	Message     string    `json:"message"`
	Price       *float64  `json:"price,omitempty"`
	Currency    *string   `json:"currency,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ResponseListResponse struct {
	Items []*ResponseResponse `json:"items"`
	Total int                 `json:"total"`
}

func FromResponseView(rm *queries.ResponseView) *ResponseResponse {
	return &ResponseResponse{
		ID:          rm.ID,
		RequestID:   rm.RequestID,
		ResponderID: rm.ResponderID,
		Message:     rm.Message,
		Price:       rm.Price,
		Currency:    rm.Currency,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromResponseViews(rms []*queries.ResponseView, total int) *ResponseListResponse {
	items := make([]*ResponseResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromResponseView(rm)
	}
	return &ResponseListResponse{Items: items, Total: total}
}
