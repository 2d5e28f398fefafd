package models

import "strings"

const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

type SearchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Passengers    int     `json:"passengers"`
	CabinClass    string  `json:"cabin_class"`
	Currency      string  `json:"currency"`
	Airline       string  `json:"airline,omitempty"`
}

// Validate checks required fields and fills defaults in place. Only a
// missing origin, destination or departure date is an error; everything
// else degrades to a sensible default.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(r.Destination) == "" {
		return ErrMissingDestination
	}
	if strings.TrimSpace(r.DepartureDate) == "" {
		return ErrMissingDepartureDate
	}
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	r.CabinClass = NormalizeCabinClass(r.CabinClass)
	if r.Currency == "" {
		r.Currency = "USD"
	}
	r.Currency = strings.ToUpper(r.Currency)
	return nil
}

// NormalizeCabinClass maps free-form cabin names onto the four canonical
// classes; anything unrecognized falls back to economy.
func NormalizeCabinClass(cabin string) string {
	switch strings.ToLower(strings.TrimSpace(cabin)) {
	case CabinEconomy, "eco", "coach":
		return CabinEconomy
	case CabinPremiumEconomy, "premium economy", "premium":
		return CabinPremiumEconomy
	case CabinBusiness:
		return CabinBusiness
	case CabinFirst:
		return CabinFirst
	default:
		return CabinEconomy
	}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
)
