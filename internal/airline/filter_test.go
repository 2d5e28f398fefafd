package airline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikara/travelmate/internal/models"
)

func offerFor(code, name string) models.Offer {
	return models.Offer{
		ID:      code + "-offer",
		Airline: models.Airline{Code: code, Name: name},
	}
}

func TestFilterEmptyPreference(t *testing.T) {
	offers := []models.Offer{offerFor("AA", "American Airlines")}
	out, matched := FilterByAirline(offers, "")
	assert.False(t, matched)
	assert.Equal(t, offers, out)
}

func TestFilterMatches(t *testing.T) {
	offers := []models.Offer{
		offerFor("AA", "American Airlines"),
		offerFor("IB", "Iberia"),
		offerFor("DL", "Delta Air Lines"),
	}

	tests := []struct {
		preference string
		wantCode   string
	}{
		{"Iberia", "IB"},
		{"iberia airlines", "IB"},
		{"IB", "IB"},
		{"american", "AA"},
		{"Delta", "DL"},
		// partial name, substring in either direction
		{"iber", "IB"},
	}

	for _, tt := range tests {
		t.Run(tt.preference, func(t *testing.T) {
			out, matched := FilterByAirline(offers, tt.preference)
			require.True(t, matched)
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantCode, out[0].Airline.Code)
		})
	}
}

func TestFilterMatchesByCodeOnOffer(t *testing.T) {
	// Offer has a code but no name; the alias set still matches it.
	offers := []models.Offer{offerFor("IB", "")}
	out, matched := FilterByAirline(offers, "Iberia")
	require.True(t, matched)
	assert.Len(t, out, 1)
}

// A preference that matches no offer on the route returns the full list
// with matched=false and an advisory note on the first few offers.
func TestFilterFallbackKeepsAllOffers(t *testing.T) {
	offers := []models.Offer{
		offerFor("AA", "American Airlines"),
		offerFor("DL", "Delta Air Lines"),
		offerFor("UA", "United Airlines"),
		offerFor("B6", "JetBlue"),
	}

	out, matched := FilterByAirline(offers, "Iberia")
	assert.False(t, matched)
	require.Len(t, out, len(offers))

	for i, offer := range out {
		if i < advisoryLimit {
			assert.Contains(t, offer.Note, "Iberia")
		} else {
			assert.Empty(t, offer.Note)
		}
	}

	// The input slice must not be mutated.
	for _, offer := range offers {
		assert.Empty(t, offer.Note)
	}
}

func TestFilterUnknownAirlineStillTriesRawPreference(t *testing.T) {
	offers := []models.Offer{
		offerFor("ZZ", "Zebra Air"),
		offerFor("AA", "American Airlines"),
	}
	out, matched := FilterByAirline(offers, "zebra")
	require.True(t, matched)
	require.Len(t, out, 1)
	assert.Equal(t, "ZZ", out[0].Airline.Code)
}

func TestResolveAliasesCrossLanguage(t *testing.T) {
	set := resolveAliases("aeroméxico")
	assert.Contains(t, set, "aeromexico")
	assert.Contains(t, set, "am")
}
