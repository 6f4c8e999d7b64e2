package business

import (
	"request-market/internal/domain/request"

	"github.com/google/uuid"
)

// Profile is a read-only snapshot owned by the external verification and
// subscription subsystem.
type Profile struct {
	ID          uuid.UUID
	Name        string
	CountryCode string
	Verified    bool
	Subscribed  bool

	// LegacyTag is the pre-migration single classification field.
	LegacyTag string
	// TypeNames are the current joined business-type names.
	TypeNames []string

	CategoryIDs    []int32
	SubcategoryIDs []int32

	// CountryRecords hold per-country capability flags. Profiles created
	// before the country rollout have none and are never capability-filtered.
	CountryRecords []CountryRecord
}

type CountryRecord struct {
	CountryCode  string
	Capabilities Capabilities
}

type Capabilities struct {
	Item         bool
	Service      bool
	Rent         bool
	Delivery     bool
	Ride         bool
	Tours        bool
	Events       bool
	Construction bool
	Education    bool
	Hiring       bool
}

// Allows maps a request type onto its capability flag. Types without a
// dedicated flag are not capability-gated.
func (c Capabilities) Allows(t request.Type) bool {
	switch t {
	case request.TypeItem:
		return c.Item
	case request.TypeService:
		return c.Service
	case request.TypeRent:
		return c.Rent
	case request.TypeDelivery:
		return c.Delivery
	case request.TypeRide:
		return c.Ride
	case request.TypeTours:
		return c.Tours
	case request.TypeEvents:
		return c.Events
	case request.TypeConstruction:
		return c.Construction
	case request.TypeEducation:
		return c.Education
	case request.TypeJob:
		return c.Hiring
	default:
		return true
	}
}

// CapabilitiesFor returns the capability record for a country, if the profile
// carries one. Legacy global-only profiles return ok=false.
func (p Profile) CapabilitiesFor(countryCode string) (Capabilities, bool) {
	for _, rec := range p.CountryRecords {
		if rec.CountryCode == countryCode {
			return rec.Capabilities, true
		}
	}
	return Capabilities{}, false
}

func (p Profile) HasCategory(id int32) bool {
	for _, c := range p.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

func (p Profile) HasSubcategory(id int32) bool {
	for _, c := range p.SubcategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}
