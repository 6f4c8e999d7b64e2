//go:build unit

package matching_test

import (
	"testing"

	"request-market/internal/domain/business"
	"request-market/internal/domain/matching"
	"request-market/internal/domain/request"
	"request-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *matching.Engine {
	return matching.NewEngine(business.NewDefaultClassificationSource())
}

func reqInfo(t request.Type) matching.RequestInfo {
	return matching.RequestInfo{ID: uuid.New(), Type: t, CountryCode: "US"}
}

func TestMatchDelivery(t *testing.T) {
	engine := newEngine()

	courier := builder.NewProfileBuilder().WithLegacyTag("delivery").Build()
	courierNew := builder.NewProfileBuilder().WithTypeNames("delivery-service").Build()
	plumber := builder.NewProfileBuilder().WithTypeNames("handyman").Build()

	matches := engine.Match(reqInfo(request.TypeDelivery), []business.Profile{courier, courierNew, plumber})

	require.Len(t, matches, 2)
	ids := []uuid.UUID{matches[0].BusinessID, matches[1].BusinessID}
	assert.Contains(t, ids, courier.ID)
	assert.Contains(t, ids, courierNew.ID)
	for _, m := range matches {
		assert.Equal(t, matching.ReasonDelivery, m.Reason)
	}
}

func TestMatchRideAndPrice(t *testing.T) {
	engine := newEngine()

	t.Run("ride goes only to ride businesses", func(t *testing.T) {
		rideCo := builder.NewProfileBuilder().WithTypeNames("ride").Build()
		other := builder.NewProfileBuilder().WithTypeNames("shop").Build()

		matches := engine.Match(reqInfo(request.TypeRide), []business.Profile{rideCo, other})
		require.Len(t, matches, 1)
		assert.Equal(t, rideCo.ID, matches[0].BusinessID)
		assert.Equal(t, matching.ReasonRide, matches[0].Reason)
	})

	t.Run("price goes only to product sellers", func(t *testing.T) {
		seller := builder.NewProfileBuilder().WithLegacyTag("product-seller").Build()
		other := builder.NewProfileBuilder().WithTypeNames("handyman").Build()

		matches := engine.Match(reqInfo(request.TypePrice), []business.Profile{seller, other})
		require.Len(t, matches, 1)
		assert.Equal(t, seller.ID, matches[0].BusinessID)
		assert.Equal(t, matching.ReasonPriceOffer, matches[0].Reason)
	})
}

func TestMatchOpenMarketplace(t *testing.T) {
	engine := newEngine()

	t.Run("every eligible business matches, ranked by category affinity", func(t *testing.T) {
		categoryID := int32(12)
		subcategoryID := int32(40)
		info := matching.RequestInfo{
			ID:            uuid.New(),
			Type:          request.TypeService,
			CategoryID:    &categoryID,
			SubcategoryID: &subcategoryID,
			CountryCode:   "US",
		}

		general := builder.NewProfileBuilder().WithCategoryIDs().Build()
		byCategory := builder.NewProfileBuilder().WithCategoryIDs(12).Build()
		bySubcategory := builder.NewProfileBuilder().WithCategoryIDs(99).WithSubcategoryIDs(40).Build()

		matches := engine.Match(info, []business.Profile{general, bySubcategory, byCategory})

		require.Len(t, matches, 3)
		assert.Equal(t, byCategory.ID, matches[0].BusinessID)
		assert.Equal(t, matching.ReasonCategory, matches[0].Reason)
		assert.Equal(t, bySubcategory.ID, matches[1].BusinessID)
		assert.Equal(t, matching.ReasonSubcategory, matches[1].Reason)
		assert.Equal(t, general.ID, matches[2].BusinessID)
		assert.Equal(t, matching.ReasonGeneral, matches[2].Reason)
	})

	t.Run("unverified, unsubscribed and foreign businesses are skipped", func(t *testing.T) {
		unverified := builder.NewProfileBuilder().WithVerified(false).Build()
		unsubscribed := builder.NewProfileBuilder().WithSubscribed(false).Build()
		foreign := builder.NewProfileBuilder().WithCountryCode("DE").Build()

		matches := engine.Match(reqInfo(request.TypeService), []business.Profile{unverified, unsubscribed, foreign})
		assert.Empty(t, matches)
	})

	t.Run("capability flags exclude only country-record holders", func(t *testing.T) {
		gated := builder.NewProfileBuilder().
			WithCountryRecord("US", business.Capabilities{Item: true}).
			Build()
		legacy := builder.NewProfileBuilder().Build()

		matches := engine.Match(reqInfo(request.TypeService), []business.Profile{gated, legacy})
		require.Len(t, matches, 1)
		assert.Equal(t, legacy.ID, matches[0].BusinessID)
	})

	t.Run("job requests check the hiring capability", func(t *testing.T) {
		hiring := builder.NewProfileBuilder().
			WithCountryRecord("US", business.Capabilities{Hiring: true}).
			Build()
		notHiring := builder.NewProfileBuilder().
			WithCountryRecord("US", business.Capabilities{Service: true}).
			Build()

		matches := engine.Match(reqInfo(request.TypeJob), []business.Profile{hiring, notHiring})
		require.Len(t, matches, 1)
		assert.Equal(t, hiring.ID, matches[0].BusinessID)
	})
}

func TestCanRespond(t *testing.T) {
	engine := newEngine()

	t.Run("delivery requires a delivery classification", func(t *testing.T) {
		courier := builder.NewProfileBuilder().WithTypeNames("delivery").Build()
		plumber := builder.NewProfileBuilder().WithTypeNames("handyman").Build()

		assert.True(t, engine.CanRespond(courier, request.TypeDelivery, "US"))
		assert.False(t, engine.CanRespond(plumber, request.TypeDelivery, "US"))
	})

	t.Run("common types pass without a country record", func(t *testing.T) {
		legacy := builder.NewProfileBuilder().Build()
		assert.True(t, engine.CanRespond(legacy, request.TypeService, "US"))
	})

	t.Run("common types honor capability records when present", func(t *testing.T) {
		gated := builder.NewProfileBuilder().
			WithCountryRecord("US", business.Capabilities{Item: true}).
			Build()
		assert.False(t, engine.CanRespond(gated, request.TypeService, "US"))
		assert.True(t, engine.CanRespond(gated, request.TypeItem, "US"))
	})

	t.Run("out of country business cannot respond", func(t *testing.T) {
		foreign := builder.NewProfileBuilder().WithCountryCode("DE").Build()
		assert.False(t, engine.CanRespond(foreign, request.TypeService, "US"))
	})
}
