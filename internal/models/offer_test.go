package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferKeyPriorities(t *testing.T) {
	dep := time.Date(2025, 7, 7, 22, 5, 0, 0, time.UTC)
	arr := time.Date(2025, 7, 8, 6, 40, 0, 0, time.UTC)

	tests := []struct {
		name  string
		offer Offer
		want  MergeKey
	}{
		{
			name: "flight number and departure",
			offer: Offer{
				ID:            "x1",
				FlightNumbers: []string{"AA100"},
				Departure:     Endpoint{Time: dep},
				Arrival:       Endpoint{Time: arr},
			},
			want: MergeKey("fn|AA100|2025-07-07T22:05:00Z"),
		},
		{
			name: "flight number formatting ignored",
			offer: Offer{
				ID:            "x2",
				FlightNumbers: []string{"aa 100"},
				Departure:     Endpoint{Time: dep},
			},
			want: MergeKey("fn|AA100|2025-07-07T22:05:00Z"),
		},
		{
			name: "airline plus both timestamps",
			offer: Offer{
				ID:        "x3",
				Airline:   Airline{Code: "IB"},
				Departure: Endpoint{Time: dep},
				Arrival:   Endpoint{Time: arr},
			},
			want: MergeKey("al|IB|2025-07-07T22:05:00Z|2025-07-08T06:40:00Z"),
		},
		{
			name: "airline name when code missing",
			offer: Offer{
				ID:        "x4",
				Airline:   Airline{Name: "Iberia"},
				Departure: Endpoint{Time: dep},
				Arrival:   Endpoint{Time: arr},
			},
			want: MergeKey("al|iberia|2025-07-07T22:05:00Z|2025-07-08T06:40:00Z"),
		},
		{
			name:  "identity fallback",
			offer: Offer{ID: "x5"},
			want:  MergeKey("id|x5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.offer.Key())
		})
	}
}

func TestOfferKeyNormalizesZone(t *testing.T) {
	utc := Offer{
		FlightNumbers: []string{"IB6845"},
		Departure:     Endpoint{Time: time.Date(2025, 7, 7, 22, 5, 0, 0, time.UTC)},
	}
	madrid := Offer{
		FlightNumbers: []string{"IB 6845"},
		Departure:     Endpoint{Time: time.Date(2025, 7, 8, 0, 5, 0, 0, time.FixedZone("UTC+2", 2*60*60))},
	}
	assert.Equal(t, utc.Key(), madrid.Key())
}

func TestAddSource(t *testing.T) {
	var o Offer
	o.AddSource("serpapi")
	o.AddSource("amadeus")
	o.AddSource("serpapi")

	assert.Equal(t, []string{"amadeus", "serpapi"}, o.Sources)
	assert.True(t, o.HasSource("amadeus"))
	assert.False(t, o.HasSource("aviationstack"))
}

func TestIsSynthetic(t *testing.T) {
	o := Offer{Sources: []string{SourceSynthetic}}
	assert.True(t, o.IsSynthetic())

	o.AddSource("amadeus")
	assert.False(t, o.IsSynthetic())
}
