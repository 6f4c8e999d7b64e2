//go:build unit

package business_test

import (
	"testing"

	"request-market/internal/domain/business"
	"request-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestClassificationSources(t *testing.T) {
	t.Run("legacy tag source matches case-insensitively", func(t *testing.T) {
		p := builder.NewProfileBuilder().WithLegacyTag(" Delivery ").Build()

		src := business.LegacyTagSource{}
		assert.True(t, src.HasClassification(p, "delivery"))
		assert.False(t, src.HasClassification(p, "ride"))
	})

	t.Run("type name source scans all joined names", func(t *testing.T) {
		p := builder.NewProfileBuilder().WithTypeNames("shop", "Delivery-Service").Build()

		src := business.TypeNameSource{}
		assert.True(t, src.HasClassification(p, "delivery-service"))
		assert.False(t, src.HasClassification(p, "delivery"))
	})

	t.Run("composite source covers both schema generations", func(t *testing.T) {
		legacyOnly := builder.NewProfileBuilder().WithLegacyTag("ride").WithTypeNames().Build()
		currentOnly := builder.NewProfileBuilder().WithTypeNames("ride").Build()
		neither := builder.NewProfileBuilder().WithTypeNames("shop").Build()

		src := business.NewDefaultClassificationSource()
		assert.True(t, src.HasClassification(legacyOnly, "ride"))
		assert.True(t, src.HasClassification(currentOnly, "ride"))
		assert.False(t, src.HasClassification(neither, "ride"))
	})
}

func TestCapabilities(t *testing.T) {
	t.Run("types without a flag are never gated", func(t *testing.T) {
		caps := business.Capabilities{}
		assert.True(t, caps.Allows("price"))
		assert.True(t, caps.Allows("other"))
		assert.False(t, caps.Allows("service"))
	})

	t.Run("CapabilitiesFor reports legacy profiles as uncovered", func(t *testing.T) {
		legacy := builder.NewProfileBuilder().Build()
		_, ok := legacy.CapabilitiesFor("US")
		assert.False(t, ok)

		covered := builder.NewProfileBuilder().
			WithCountryRecord("US", business.Capabilities{Ride: true}).
			Build()
		caps, ok := covered.CapabilitiesFor("US")
		assert.True(t, ok)
		assert.True(t, caps.Ride)

		_, ok = covered.CapabilitiesFor("DE")
		assert.False(t, ok)
	})
}
