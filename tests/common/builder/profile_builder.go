//go:build unit || e2e

package builder

import (
	"request-market/internal/domain/business"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	Name           string
	CountryCode    string
	Verified       bool
	Subscribed     bool
	LegacyTag      string
	TypeNames      []string
	CategoryIDs    []int32
	SubcategoryIDs []int32
	CountryRecords []business.CountryRecord
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		Name:        "Acme Services",
		CountryCode: "US",
		Verified:    true,
		Subscribed:  true,
		TypeNames:   []string{"handyman"},
		CategoryIDs: []int32{12},
	}
}

func (b *ProfileBuilder) Build() business.Profile {
	return business.Profile{
		ID:             uuid.New(),
		Name:           b.Name,
		CountryCode:    b.CountryCode,
		Verified:       b.Verified,
		Subscribed:     b.Subscribed,
		LegacyTag:      b.LegacyTag,
		TypeNames:      b.TypeNames,
		CategoryIDs:    b.CategoryIDs,
		SubcategoryIDs: b.SubcategoryIDs,
		CountryRecords: b.CountryRecords,
	}
}

// Fluent builder methods
func (b *ProfileBuilder) WithCountryCode(code string) *ProfileBuilder {
	b.CountryCode = code
	return b
}

func (b *ProfileBuilder) WithVerified(v bool) *ProfileBuilder {
	b.Verified = v
	return b
}

func (b *ProfileBuilder) WithSubscribed(s bool) *ProfileBuilder {
	b.Subscribed = s
	return b
}

func (b *ProfileBuilder) WithLegacyTag(tag string) *ProfileBuilder {
	b.LegacyTag = tag
	return b
}

func (b *ProfileBuilder) WithTypeNames(names ...string) *ProfileBuilder {
	b.TypeNames = names
	return b
}

func (b *ProfileBuilder) WithCategoryIDs(ids ...int32) *ProfileBuilder {
	b.CategoryIDs = ids
	return b
}

func (b *ProfileBuilder) WithSubcategoryIDs(ids ...int32) *ProfileBuilder {
	b.SubcategoryIDs = ids
	return b
}

func (b *ProfileBuilder) WithCountryRecord(countryCode string, caps business.Capabilities) *ProfileBuilder {
	b.CountryRecords = append(b.CountryRecords, business.CountryRecord{
		CountryCode:  countryCode,
		Capabilities: caps,
	})
	return b
}
