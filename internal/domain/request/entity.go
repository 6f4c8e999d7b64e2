package request

import (
	"time"

	"request-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingTitle       = errs.New("title is required")
	ErrMissingDescription = errs.New("description is required")
	ErrMissingCity        = errs.New("city is required")
	ErrMissingCategory    = errs.New("category is required")
	ErrNotActive          = errs.New("request is not active")
	ErrNoAcceptedResponse = errs.New("request has no accepted response")
	ErrResponseNotLinked  = errs.New("response does not belong to this request")
)

// UrgentBoostDuration is how long a confirmed urgent boost keeps a request
// ranked first. Expiry is evaluated at read time; no sweeper exists.
const UrgentBoostDuration = 30 * 24 * time.Hour

type Request struct {
	id                 uuid.UUID
	ownerID            uuid.UUID
	reqType            Type
	categoryID         *int32
	subcategoryID      *int32
	countryCode        string
	title              string
	description        string
	city               string
	phone              string
	email              string
	status             Status
	acceptedResponseID *uuid.UUID
	isUrgent           bool
	urgentUntil        *time.Time
	urgentPaymentRef   *string
	createdAt          time.Time
	updatedAt          time.Time
}

type NewRequestParams struct {
	OwnerID       uuid.UUID
	Type          Type
	CategoryID    *int32
	SubcategoryID *int32
	CountryCode   string
	Title         string
	Description   string
	City          string
	Phone         string
	Email         string
}

func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	if p.Title == "" {
		return nil, ErrMissingTitle
	}
	if p.Description == "" {
		return nil, ErrMissingDescription
	}
	if p.City == "" {
		return nil, ErrMissingCity
	}
	// rides are routed by pickup/destination and carry no category
	if p.CategoryID == nil && p.Type != TypeRide {
		return nil, ErrMissingCategory
	}

	return &Request{
		id:            uuid.New(),
		ownerID:       p.OwnerID,
		reqType:       p.Type,
		categoryID:    p.CategoryID,
		subcategoryID: p.SubcategoryID,
		countryCode:   p.CountryCode,
		title:         p.Title,
		description:   p.Description,
		city:          p.City,
		phone:         p.Phone,
		email:         p.Email,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id, ownerID uuid.UUID,
	reqType Type,
	categoryID, subcategoryID *int32,
	countryCode, title, description, city, phone, email string,
	status Status,
	acceptedResponseID *uuid.UUID,
	isUrgent bool,
	urgentUntil *time.Time,
	urgentPaymentRef *string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                 id,
		ownerID:            ownerID,
		reqType:            reqType,
		categoryID:         categoryID,
		subcategoryID:      subcategoryID,
		countryCode:        countryCode,
		title:              title,
		description:        description,
		city:               city,
		phone:              phone,
		email:              email,
		status:             status,
		acceptedResponseID: acceptedResponseID,
		isUrgent:           isUrgent,
		urgentUntil:        urgentUntil,
		urgentPaymentRef:   urgentPaymentRef,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Accept points the request at responseID. While the request is active this
// also closes it; in any other status only the pointer moves. Re-pointing an
// already accepted request is deliberately not guarded.
func (r *Request) Accept(responseID uuid.UUID, now time.Time) {
	id := responseID
	r.acceptedResponseID = &id
	if r.status == StatusActive {
		r.status = StatusClosed
	}
	r.updatedAt = now
}

// ClearAccepted drops the acceptance pointer and reopens the request if the
// acceptance was what closed it.
func (r *Request) ClearAccepted(now time.Time) error {
	if r.acceptedResponseID == nil {
		return ErrNoAcceptedResponse
	}
	r.acceptedResponseID = nil
	if r.status == StatusClosed {
		r.status = StatusActive
	}
	r.updatedAt = now
	return nil
}

// MarkCompleted requires an accepted response and is idempotent.
func (r *Request) MarkCompleted(now time.Time) error {
	if r.status == StatusCompleted {
		return nil
	}
	if r.acceptedResponseID == nil {
		return ErrNoAcceptedResponse
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Request) ConfirmUrgentBoost(paymentRef string, now time.Time) {
	until := now.Add(UrgentBoostDuration)
	ref := paymentRef
	r.isUrgent = true
	r.urgentUntil = &until
	r.urgentPaymentRef = &ref
	r.updatedAt = now
}

func (r *Request) ClearUrgentBoost(now time.Time) {
	r.isUrgent = false
	r.urgentUntil = nil
	r.urgentPaymentRef = nil
	r.updatedAt = now
}

func (r *Request) IsActive() bool {
	return r.status == StatusActive
}

// IsUrgentActive evaluates boost expiry against the supplied time.
func (r *Request) IsUrgentActive(now time.Time) bool {
	return r.isUrgent && r.urgentUntil != nil && now.Before(*r.urgentUntil)
}

func (r *Request) ID() uuid.UUID                   { return r.id }
func (r *Request) OwnerID() uuid.UUID              { return r.ownerID }
func (r *Request) Type() Type                      { return r.reqType }
func (r *Request) CategoryID() *int32              { return r.categoryID }
func (r *Request) SubcategoryID() *int32           { return r.subcategoryID }
func (r *Request) CountryCode() string             { return r.countryCode }
func (r *Request) Title() string                   { return r.title }
func (r *Request) Description() string             { return r.description }
func (r *Request) City() string                    { return r.city }
func (r *Request) Phone() string                   { return r.phone }
func (r *Request) Email() string                   { return r.email }
func (r *Request) Status() Status                  { return r.status }
func (r *Request) AcceptedResponseID() *uuid.UUID  { return r.acceptedResponseID }
func (r *Request) IsUrgent() bool                  { return r.isUrgent }
func (r *Request) UrgentUntil() *time.Time         { return r.urgentUntil }
func (r *Request) UrgentPaymentRef() *string       { return r.urgentPaymentRef }
func (r *Request) CreatedAt() time.Time            { return r.createdAt }
func (r *Request) UpdatedAt() time.Time            { return r.updatedAt }
