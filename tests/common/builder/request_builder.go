//go:build unit || e2e

package builder

import (
	"time"

	domrequest "request-market/internal/domain/request"
	reqdto "request-market/internal/handler/dto/request"
	"request-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	OwnerID       uuid.UUID
	Type          domrequest.Type
	CategoryID    *int32
	SubcategoryID *int32
	CountryCode   string
	Title         string
	Description   string
	City          string
	Phone         string
	Email         string
	Status        domrequest.Status
	CreatedAt     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	category := int32(12)
	return &RequestBuilder{
		OwnerID:     uuid.New(),
		Type:        domrequest.TypeService,
		CategoryID:  &category,
		CountryCode: "US",
		Title:       "Fix a leaking kitchen tap",
		Description: "The tap drips constantly, needs a plumber this week.",
		City:        "Springfield",
		Phone:       "+15550001111",
		Email:       "owner@example.com",
		Status:      domrequest.StatusActive,
		CreatedAt:   time.Now(),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() (*domrequest.Request, error) {
	return domrequest.NewRequest(domrequest.NewRequestParams{
		OwnerID:       b.OwnerID,
		Type:          b.Type,
		CategoryID:    b.CategoryID,
		SubcategoryID: b.SubcategoryID,
		CountryCode:   b.CountryCode,
		Title:         b.Title,
		Description:   b.Description,
		City:          b.City,
		Phone:         b.Phone,
		Email:         b.Email,
	}, b.CreatedAt)
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	phone := b.Phone
	return &queries.RequestView{
		ID:            uuid.New(),
		OwnerID:       b.OwnerID,
		Type:          b.Type.String(),
		CategoryID:    b.CategoryID,
		SubcategoryID: b.SubcategoryID,
		CountryCode:   b.CountryCode,
		Title:         b.Title,
		Description:   b.Description,
		City:          b.City,
		Phone:         &phone,
		Email:         b.Email,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateRequestRequest {
	return reqdto.CreateRequestRequest{
		Type:          b.Type.String(),
		CategoryID:    b.CategoryID,
		SubcategoryID: b.SubcategoryID,
		Title:         b.Title,
		Description:   b.Description,
		City:          b.City,
		Phone:         b.Phone,
		Email:         b.Email,
	}
}

func (b *RequestBuilder) BuildUpdateRequestDTO() reqdto.UpdateRequestRequest {
	return reqdto.UpdateRequestRequest{
		Title:       b.Title,
		Description: b.Description,
		City:        b.City,
		Phone:       b.Phone,
		Email:       b.Email,
	}
}

// Fluent builder methods
func (b *RequestBuilder) WithOwnerID(id uuid.UUID) *RequestBuilder {
	b.OwnerID = id
	return b
}

func (b *RequestBuilder) WithType(t domrequest.Type) *RequestBuilder {
	b.Type = t
	return b
}

func (b *RequestBuilder) WithCategoryID(id *int32) *RequestBuilder {
	b.CategoryID = id
	return b
}

func (b *RequestBuilder) WithCountryCode(code string) *RequestBuilder {
	b.CountryCode = code
	return b
}

func (b *RequestBuilder) WithTitle(title string) *RequestBuilder {
	b.Title = title
	return b
}

func (b *RequestBuilder) WithDescription(description string) *RequestBuilder {
	b.Description = description
	return b
}

func (b *RequestBuilder) WithCity(city string) *RequestBuilder {
	b.City = city
	return b
}

func (b *RequestBuilder) WithCreatedAt(t time.Time) *RequestBuilder {
	b.CreatedAt = t
	return b
}

func (b *RequestBuilder) AsRide() *RequestBuilder {
	b.Type = domrequest.TypeRide
	b.CategoryID = nil
	b.Title = "Airport pickup tomorrow morning"
	b.Description = "Need a ride from downtown to the airport at 6am."
	return b
}

func (b *RequestBuilder) AsDelivery() *RequestBuilder {
	b.Type = domrequest.TypeDelivery
	b.Title = "Deliver a package across town"
	b.Description = "Small box, same-day delivery."
	return b
}
