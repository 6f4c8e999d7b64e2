package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	Type               string     `json:"type"`
	CategoryID         *int32     `json:"category_id,omitempty"`
	SubcategoryID      *int32     `json:"subcategory_id,omitempty"`
	CountryCode        string     `json:"country_code"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	City               string     `json:"city"`
	Phone              *string    `json:"phone,omitempty"`
	Email              string     `json:"email"`
	Status             string     `json:"status"`
	AcceptedResponseID *uuid.UUID `json:"accepted_response_id,omitempty"`
	IsUrgent           bool       `json:"is_urgent"`
	UrgentUntil        *time.Time `json:"urgent_until,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Derived by the gating filter so callers never re-derive the rule.
	ContactVisible bool `json:"contact_visible"`
	CanMessage     bool `json:"can_message"`
}

type ResponseView struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	ResponderID uuid.UUID `json:"responder_id"`
	Message     string    `json:"message"`
	Price       *float64  `json:"price,omitempty"`
	Currency    *string   `json:"currency,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RequestFilters struct {
	Type        string
	CategoryID  *int32
	CountryCode string
	Search      string
}

type Page struct {
	Limit  int
	Offset int
}

const MaxListLimit = 200

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
