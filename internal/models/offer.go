package models

import (
	"sort"
	"strings"
	"time"
)

type Airline struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

type Endpoint struct {
	Airport string    `json:"airport"`
	City    string    `json:"city,omitempty"`
	Time    time.Time `json:"time"`
}

type Layover struct {
	Airport         string `json:"airport"`
	City            string `json:"city,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Price is a tri-state value: a known amount, or explicitly unavailable.
// Providers that answer "check website" or return no fare at all produce
// Available=false, never a zero or sentinel amount.
type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency,omitempty"`
	Available bool    `json:"available"`
	Formatted string  `json:"formatted,omitempty"`
}

func UnavailablePrice() Price {
	return Price{Available: false}
}

// Offer is the canonical flight record every adapter normalizes into.
// Sources lists every provider that contributed a field, kept sorted.
type Offer struct {
	ID              string    `json:"id"`
	Airline         Airline   `json:"airline"`
	FlightNumbers   []string  `json:"flight_numbers,omitempty"`
	Departure       Endpoint  `json:"departure"`
	Arrival         Endpoint  `json:"arrival"`
	DurationMinutes int       `json:"duration_minutes"`
	Stops           int       `json:"stops"`
	Layovers        []Layover `json:"layovers,omitempty"`
	Price           Price     `json:"price"`
	CabinClass      string    `json:"cabin_class,omitempty"`
	Sources         []string  `json:"sources"`
	Note            string    `json:"note,omitempty"`
}

// SourceSynthetic tags offers produced by the fallback generator when no
// real provider returned data. Callers treat these as informational only.
const SourceSynthetic = "synthetic"

func (o *Offer) AddSource(source string) {
	for _, s := range o.Sources {
		if s == source {
			return
		}
	}
	o.Sources = append(o.Sources, source)
	sort.Strings(o.Sources)
}

func (o *Offer) HasSource(source string) bool {
	for _, s := range o.Sources {
		if s == source {
			return true
		}
	}
	return false
}

func (o *Offer) IsSynthetic() bool {
	return len(o.Sources) == 1 && o.Sources[0] == SourceSynthetic
}

// MergeKey identifies one physical flight across providers.
type MergeKey string

// Key derives the offer's merge key from the most specific fields present,
// in priority order: flight number + departure time, then airline +
// departure + arrival. Offers lacking both signals key on their own ID and
// are never merged.
func (o *Offer) Key() MergeKey {
	dep := o.Departure.Time
	arr := o.Arrival.Time

	if len(o.FlightNumbers) > 0 && !dep.IsZero() {
		nums := make([]string, len(o.FlightNumbers))
		for i, n := range o.FlightNumbers {
			nums[i] = normalizeFlightNumber(n)
		}
		return MergeKey("fn|" + strings.Join(nums, "+") + "|" + dep.UTC().Format(time.RFC3339))
	}

	carrier := strings.ToUpper(strings.TrimSpace(o.Airline.Code))
	if carrier == "" {
		carrier = strings.ToLower(strings.TrimSpace(o.Airline.Name))
	}
	if carrier != "" && !dep.IsZero() && !arr.IsZero() {
		return MergeKey("al|" + carrier + "|" + dep.UTC().Format(time.RFC3339) + "|" + arr.UTC().Format(time.RFC3339))
	}

	return MergeKey("id|" + o.ID)
}

// normalizeFlightNumber strips spaces and dashes so "AA 100", "AA-100" and
// "AA100" key identically.
func normalizeFlightNumber(n string) string {
	n = strings.ToUpper(strings.TrimSpace(n))
	n = strings.ReplaceAll(n, " ", "")
	n = strings.ReplaceAll(n, "-", "")
	return n
}
