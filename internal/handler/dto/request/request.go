package request

import (
	"request-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Type          string `json:"type"`
	Pickup        string `json:"pickup,omitempty"`
	Destination   string `json:"destination,omitempty"`
	CategoryID    *int32 `json:"category_id,omitempty"`
	SubcategoryID *int32 `json:"subcategory_id,omitempty"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	City          string `json:"city"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

func (r CreateRequestRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		Type:          r.Type,
		Pickup:        r.Pickup,
		Destination:   r.Destination,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Title:         r.Title,
		Description:   r.Description,
		City:          r.City,
		Phone:         r.Phone,
		Email:         r.Email,
	}
}

type UpdateRequestRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	City        string `json:"city" binding:"required"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (r UpdateRequestRequest) ToInput() commands.UpdateRequestInput {
	return commands.UpdateRequestInput{
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		Phone:       r.Phone,
		Email:       r.Email,
	}
}

type AcceptResponseRequest struct {
	ResponseID uuid.UUID `json:"response_id" binding:"required"`
}

type ConfirmBoostRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
}

type SetBoostPriceRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required"`
}
