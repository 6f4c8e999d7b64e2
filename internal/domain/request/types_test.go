//go:build unit

package request_test

import (
	"testing"

	"request-market/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		hints    request.TypeHints
		expected request.Type
		ok       bool
	}{
		{name: "canonical spelling", raw: "service", expected: request.TypeService, ok: true},
		{name: "plural alias", raw: "services", expected: request.TypeService, ok: true},
		{name: "goods maps to item", raw: "goods", expected: request.TypeItem, ok: true},
		{name: "taxi maps to ride", raw: "taxi", expected: request.TypeRide, ok: true},
		{name: "rental maps to rent", raw: "rental", expected: request.TypeRent, ok: true},
		{name: "vacancy maps to job", raw: "vacancy", expected: request.TypeJob, ok: true},
		{name: "price_offer maps to price", raw: "price_offer", expected: request.TypePrice, ok: true},
		{name: "mixed case accepted", raw: "DeLiVeRy", expected: request.TypeDelivery, ok: true},
		{name: "surrounding whitespace trimmed", raw: "  tours ", expected: request.TypeTours, ok: true},
		{
			name:     "route hints imply ride without a type",
			raw:      "",
			hints:    request.TypeHints{Pickup: "Main St 1", Destination: "Airport"},
			expected: request.TypeRide,
			ok:       true,
		},
		{
			name:  "pickup alone is not enough",
			raw:   "",
			hints: request.TypeHints{Pickup: "Main St 1"},
			ok:    false,
		},
		{
			name:     "explicit alias wins over route hints",
			raw:      "delivery",
			hints:    request.TypeHints{Pickup: "A", Destination: "B"},
			expected: request.TypeDelivery,
			ok:       true,
		},
		{name: "unrecognized yields empty", raw: "spaceship", ok: false},
		{name: "empty yields empty", raw: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := request.NormalizeType(tc.raw, tc.hints)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}
