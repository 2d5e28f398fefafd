package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want error
	}{
		{"missing origin", SearchRequest{Destination: "MAD", DepartureDate: "2025-07-07"}, ErrMissingOrigin},
		{"missing destination", SearchRequest{Origin: "JFK", DepartureDate: "2025-07-07"}, ErrMissingDestination},
		{"missing date", SearchRequest{Origin: "JFK", Destination: "MAD"}, ErrMissingDepartureDate},
		{"blank origin", SearchRequest{Origin: "   ", Destination: "MAD", DepartureDate: "2025-07-07"}, ErrMissingOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.req.Validate(), tt.want)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	req := SearchRequest{
		Origin:        "JFK",
		Destination:   "MAD",
		DepartureDate: "2025-07-07",
		Passengers:    0,
		CabinClass:    "super deluxe",
		Currency:      "usd",
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, 1, req.Passengers)
	assert.Equal(t, CabinEconomy, req.CabinClass)
	assert.Equal(t, "USD", req.Currency)
}

func TestNormalizeCabinClass(t *testing.T) {
	assert.Equal(t, CabinEconomy, NormalizeCabinClass("ECONOMY"))
	assert.Equal(t, CabinPremiumEconomy, NormalizeCabinClass("Premium Economy"))
	assert.Equal(t, CabinBusiness, NormalizeCabinClass("business"))
	assert.Equal(t, CabinFirst, NormalizeCabinClass("first"))
	assert.Equal(t, CabinEconomy, NormalizeCabinClass(""))
	assert.Equal(t, CabinEconomy, NormalizeCabinClass("turista"))
}
