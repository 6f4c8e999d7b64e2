package response

import (
	"time"

	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            uuid.UUID  `json:"ownerId"`
	Type               string     `json:"type"`
	CategoryID         *int32     `json:"categoryId,omitempty"`
	SubcategoryID      *int32     `json:"subcategoryId,omitempty"`
	CountryCode        string     `json:"countryCode"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	City               string     `json:"city"`
	Phone              *string    `json:"phone,omitempty"`
	Email              string     `json:"email"`
	Status             string     `json:"status"`
	AcceptedResponseID *uuid.UUID `json:"acceptedResponseId,omitempty"`
	IsUrgent           bool       `json:"isUrgent"`
	UrgentUntil        *time.Time `json:"urgentUntil,omitempty"`
	ContactVisible     bool       `json:"contactVisible"`
	CanMessage         bool       `json:"canMessage"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type RequestListResponse struct {
	Items []*RequestResponse `json:"items"`
	Total int                `json:"total"`
}

func FromRequestView(rm *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:                 rm.ID,
		OwnerID:            rm.OwnerID,
		Type:               rm.Type,
		CategoryID:         rm.CategoryID,
		SubcategoryID:      rm.SubcategoryID,
		CountryCode:        rm.CountryCode,
		Title:              rm.Title,
		Description:        rm.Description,
		City:               rm.City,
		Phone:              rm.Phone,
		Email:              rm.Email,
		Status:             rm.Status,
		AcceptedResponseID: rm.AcceptedResponseID,
		IsUrgent:           rm.IsUrgent,
		UrgentUntil:        rm.UrgentUntil,
		ContactVisible:     rm.ContactVisible,
		CanMessage:         rm.CanMessage,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromRequestViews(rms []*queries.RequestView, total int) *RequestListResponse {
	items := make([]*RequestResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromRequestView(rm)
	}
	return &RequestListResponse{Items: items, Total: total}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type UrgentBoostOrderResponse struct {
	RequestID  uuid.UUID `json:"requestId"`
	PaymentRef string    `json:"paymentRef"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
}

func FromUrgentBoostOrder(order *commands.UrgentBoostOrder) *UrgentBoostOrderResponse {
	return &UrgentBoostOrderResponse{
		RequestID:  order.RequestID,
		PaymentRef: order.PaymentRef,
		Amount:     order.Amount,
		Currency:   order.Currency,
	}
}
