package matching

import (
	"sort"

	"request-market/internal/domain/business"
	"request-market/internal/domain/request"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonDelivery    Reason = "delivery_request"
	ReasonRide        Reason = "ride_request"
	ReasonPriceOffer  Reason = "price_request"
	ReasonCategory    Reason = "category_match"
	ReasonSubcategory Reason = "subcategory_match"
	ReasonGeneral     Reason = "new_request"
)

// Lower priority ranks first in dispatch order.
const (
	PriorityCategory    = 1
	PrioritySubcategory = 2
	PriorityGeneral     = 3
)

const (
	classDelivery        = "delivery"
	classDeliveryService = "delivery-service"
	classRide            = "ride"
	classProductSeller   = "product-seller"
)

type RequestInfo struct {
	ID            uuid.UUID
	Type          request.Type
	CategoryID    *int32
	SubcategoryID *int32
	CountryCode   string
}

type Match struct {
	BusinessID   uuid.UUID
	BusinessName string
	Reason       Reason
	Priority     int
}

type Engine struct {
	classifier business.ClassificationSource
}

func NewEngine(classifier business.ClassificationSource) *Engine {
	return &Engine{classifier: classifier}
}

// Match selects the businesses to notify for a new request. Rules are
// mutually exclusive by request type: delivery, ride and price requests go
// only to matching classifications; every other type is an open marketplace
// where all verified subscribed in-country businesses qualify, ranked by
// category affinity.
func (e *Engine) Match(req RequestInfo, profiles []business.Profile) []Match {
	var matches []Match
	for _, p := range profiles {
		if !e.eligibleBase(p, req.CountryCode) {
			continue
		}

		switch req.Type {
		case request.TypeDelivery:
			if e.classifier.HasClassification(p, classDelivery) || e.classifier.HasClassification(p, classDeliveryService) {
				matches = append(matches, Match{p.ID, p.Name, ReasonDelivery, PriorityGeneral})
			}
		case request.TypeRide:
			if e.classifier.HasClassification(p, classRide) {
				matches = append(matches, Match{p.ID, p.Name, ReasonRide, PriorityGeneral})
			}
		case request.TypePrice:
			if e.classifier.HasClassification(p, classProductSeller) {
				matches = append(matches, Match{p.ID, p.Name, ReasonPriceOffer, PriorityGeneral})
			}
		default:
			if m, ok := e.matchCommon(req, p); ok {
				matches = append(matches, m)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority < matches[j].Priority
	})
	return matches
}

func (e *Engine) eligibleBase(p business.Profile, countryCode string) bool {
	return p.Verified && p.Subscribed && p.CountryCode == countryCode
}

// matchCommon implements the open-marketplace branch. Capability flags apply
// only to profiles that carry a record for the request's country; legacy
// global-only profiles are never excluded by them.
func (e *Engine) matchCommon(req RequestInfo, p business.Profile) (Match, bool) {
	if caps, ok := p.CapabilitiesFor(req.CountryCode); ok && !caps.Allows(req.Type) {
		return Match{}, false
	}

	reason, priority := ReasonGeneral, PriorityGeneral
	switch {
	case req.CategoryID != nil && p.HasCategory(*req.CategoryID):
		reason, priority = ReasonCategory, PriorityCategory
	case req.SubcategoryID != nil && p.HasSubcategory(*req.SubcategoryID):
		reason, priority = ReasonSubcategory, PrioritySubcategory
	}
	return Match{p.ID, p.Name, reason, priority}, true
}

// CanRespond is the single-entity mirror of Match, used to gate direct
// response submission. Note: the caller currently enforces it only for ride
// and delivery requests, so common types can respond past capability flags;
// kept aligned with the documented submission behavior.
func (e *Engine) CanRespond(p business.Profile, reqType request.Type, countryCode string) bool {
	if !e.eligibleBase(p, countryCode) {
		return false
	}
	switch reqType {
	case request.TypeDelivery:
		return e.classifier.HasClassification(p, classDelivery) || e.classifier.HasClassification(p, classDeliveryService)
	case request.TypeRide:
		return e.classifier.HasClassification(p, classRide)
	case request.TypePrice:
		return e.classifier.HasClassification(p, classProductSeller)
	default:
		if caps, ok := p.CapabilitiesFor(countryCode); ok {
			return caps.Allows(reqType)
		}
		return true
	}
}
