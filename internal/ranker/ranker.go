// Package ranker fixes the final offer order. The sort is a pure function
// of the offer set, independent of provider response order or goroutine
// completion order, which is what makes the pipeline's output testable
// despite its internal concurrency.
package ranker

import (
	"sort"
	"strings"

	"github.com/avikara/travelmate/internal/models"
)

// Rank returns the offers sorted by departure time ascending, ties broken
// by price ascending with unavailable prices last, then by flight number
// and ID so any two distinct offers have a total order.
func Rank(offers []models.Offer) []models.Offer {
	ranked := make([]models.Offer, len(offers))
	copy(ranked, offers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func less(a, b models.Offer) bool {
	at, bt := a.Departure.Time.UTC(), b.Departure.Time.UTC()
	if !at.Equal(bt) {
		return at.Before(bt)
	}

	switch {
	case a.Price.Available && !b.Price.Available:
		return true
	case !a.Price.Available && b.Price.Available:
		return false
	case a.Price.Available && b.Price.Available && a.Price.Amount != b.Price.Amount:
		return a.Price.Amount < b.Price.Amount
	}

	an := strings.Join(a.FlightNumbers, "+")
	bn := strings.Join(b.FlightNumbers, "+")
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}
