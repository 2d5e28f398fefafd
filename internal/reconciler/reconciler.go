// Package reconciler deduplicates offers that several providers report
// for the same physical flight and merges their complementary fields into
// one record per merge key.
package reconciler

import (
	"sort"
	"strings"

	"github.com/avikara/travelmate/internal/models"
)

// placeholderAirlines are provider-side buckets that cannot be attributed
// to one carrier. Keeping them would corrupt airline filtering, so they
// are dropped before grouping.
var placeholderAirlines = map[string]bool{
	"multiple airlines": true,
	"various airlines":  true,
	"mixed carriers":    true,
}

// sourceDetail ranks providers by how complete their itinerary records
// are. The highest-ranked contributor within a merge group becomes the
// base offer that the others fill into.
var sourceDetail = map[string]int{
	"serpapi":              3,
	"amadeus":              2,
	"aviationstack":        1,
	models.SourceSynthetic: 0,
}

// Reconcile groups offers by merge key and collapses each group to one
// offer. Guarantees: no two returned offers share a key, and the union of
// source tags over the output equals the union over the (non-placeholder)
// input.
func Reconcile(offers []models.Offer) []models.Offer {
	groups := make(map[models.MergeKey][]models.Offer)
	order := make([]models.MergeKey, 0, len(offers))

	for _, offer := range offers {
		if placeholderAirlines[strings.ToLower(strings.TrimSpace(offer.Airline.Name))] {
			continue
		}
		key := offer.Key()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], offer)
	}

	result := make([]models.Offer, 0, len(order))
	for _, key := range order {
		result = append(result, mergeGroup(groups[key]))
	}
	return result
}

func mergeGroup(group []models.Offer) models.Offer {
	if len(group) == 1 {
		return group[0]
	}

	baseIdx := 0
	for i, offer := range group {
		if detailRank(offer) > detailRank(group[baseIdx]) {
			baseIdx = i
		}
	}

	merged := group[baseIdx]
	for i, offer := range group {
		if i == baseIdx {
			continue
		}
		fillFrom(&merged, offer)
	}

	for _, offer := range group {
		for _, source := range offer.Sources {
			merged.AddSource(source)
		}
	}
	return merged
}

func detailRank(offer models.Offer) int {
	best := -1
	for _, source := range offer.Sources {
		if rank, ok := sourceDetail[source]; ok && rank > best {
			best = rank
		}
	}
	return best
}

// fillFrom copies a field from other only when the base's field is empty
// or unknown; established values are never overwritten.
func fillFrom(base *models.Offer, other models.Offer) {
	if base.Airline.Code == "" {
		base.Airline.Code = other.Airline.Code
	}
	if base.Airline.Name == "" {
		base.Airline.Name = other.Airline.Name
	}
	if len(base.FlightNumbers) == 0 {
		base.FlightNumbers = other.FlightNumbers
	}
	if base.Departure.Time.IsZero() {
		base.Departure.Time = other.Departure.Time
	}
	if base.Departure.Airport == "" {
		base.Departure.Airport = other.Departure.Airport
	}
	if base.Departure.City == "" {
		base.Departure.City = other.Departure.City
	}
	if base.Arrival.Time.IsZero() {
		base.Arrival.Time = other.Arrival.Time
	}
	if base.Arrival.Airport == "" {
		base.Arrival.Airport = other.Arrival.Airport
	}
	if base.Arrival.City == "" {
		base.Arrival.City = other.Arrival.City
	}
	if base.DurationMinutes == 0 {
		base.DurationMinutes = other.DurationMinutes
	}
	if len(base.Layovers) == 0 && len(other.Layovers) > 0 {
		base.Layovers = other.Layovers
		base.Stops = other.Stops
	}
	if !base.Price.Available && other.Price.Available {
		base.Price = other.Price
	}
	if base.CabinClass == "" {
		base.CabinClass = other.CabinClass
	}
}

// SourceSet returns the distinct source tags across a slice of offers,
// sorted. Used by callers and tests to check provenance conservation.
func SourceSet(offers []models.Offer) []string {
	seen := make(map[string]bool)
	for _, offer := range offers {
		for _, source := range offer.Sources {
			seen[source] = true
		}
	}
	sources := make([]string, 0, len(seen))
	for source := range seen {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}
