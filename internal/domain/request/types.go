package request

import "strings"

type Type string

const (
	TypeItem         Type = "item"
	TypeService      Type = "service"
	TypeRide         Type = "ride"
	TypeRent         Type = "rent"
	TypeDelivery     Type = "delivery"
	TypeJob          Type = "job"
	TypePrice        Type = "price"
	TypeTours        Type = "tours"
	TypeEvents       Type = "events"
	TypeConstruction Type = "construction"
	TypeEducation    Type = "education"
	TypeOther        Type = "other"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeItem, TypeService, TypeRide, TypeRent, TypeDelivery, TypeJob,
		TypePrice, TypeTours, TypeEvents, TypeConstruction, TypeEducation, TypeOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusCompleted:
		return true
	default:
		return false
	}
}

// TypeHints carries request metadata that can disambiguate the type when the
// raw string alone does not (older clients send ride requests without a type
// but with route fields populated).
type TypeHints struct {
	Pickup      string
	Destination string
}

// legacy spellings accumulated across client versions; all map onto the
// canonical enum
var typeAliases = map[string]Type{
	"item":          TypeItem,
	"items":         TypeItem,
	"good":          TypeItem,
	"goods":         TypeItem,
	"product":       TypeItem,
	"service":       TypeService,
	"services":      TypeService,
	"ride":          TypeRide,
	"rides":         TypeRide,
	"taxi":          TypeRide,
	"rent":          TypeRent,
	"rents":         TypeRent,
	"rental":        TypeRent,
	"delivery":      TypeDelivery,
	"deliveries":    TypeDelivery,
	"job":           TypeJob,
	"jobs":          TypeJob,
	"vacancy":       TypeJob,
	"hiring":        TypeJob,
	"price":         TypePrice,
	"prices":        TypePrice,
	"price_offer":   TypePrice,
	"tour":          TypeTours,
	"tours":         TypeTours,
	"event":         TypeEvents,
	"events":        TypeEvents,
	"construction":  TypeConstruction,
	"constructions": TypeConstruction,
	"education":     TypeEducation,
	"educations":    TypeEducation,
	"other":         TypeOther,
	"others":        TypeOther,
}

// NormalizeType maps a free-form type string plus metadata hints onto the
// canonical enum. A populated pickup+destination pair identifies a ride even
// when the raw string says nothing. Unrecognized input yields ("", false)
// rather than an error so callers can fall through to default categorization.
func NormalizeType(raw string, hints TypeHints) (Type, bool) {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t, true
	}
	if strings.TrimSpace(hints.Pickup) != "" && strings.TrimSpace(hints.Destination) != "" {
		return TypeRide, true
	}
	return "", false
}
