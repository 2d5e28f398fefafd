package providers

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/avikara/travelmate/internal/models"
	"github.com/avikara/travelmate/internal/timezone"
	"github.com/avikara/travelmate/pkg/currency"
)

// SyntheticProvider generates deterministic placeholder offers when no
// real provider credentials are configured or every real provider failed.
// Offers are seeded from the route and date, so repeated searches return
// identical results, and every offer carries the "synthetic" source tag so
// callers can present them as non-authoritative.
type SyntheticProvider struct{}

func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

func (p *SyntheticProvider) Name() string {
	return models.SourceSynthetic
}

var syntheticCarriers = []models.Airline{
	{Code: "AA", Name: "American Airlines"},
	{Code: "BA", Name: "British Airways"},
	{Code: "DL", Name: "Delta Air Lines"},
	{Code: "IB", Name: "Iberia"},
	{Code: "AF", Name: "Air France"},
	{Code: "LH", Name: "Lufthansa"},
	{Code: "UA", Name: "United Airlines"},
}

var syntheticDepartures = []struct{ hour, minute int }{
	{7, 30},
	{12, 45},
	{18, 20},
}

func (p *SyntheticProvider) Query(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		date = time.Now().AddDate(0, 0, 1)
	}

	origin := strings.ToUpper(req.Origin)
	destination := strings.ToUpper(req.Destination)
	seed := routeSeed(origin, destination, req.DepartureDate)
	loc := timezone.LocationFor(origin)

	offers := make([]models.Offer, 0, len(syntheticDepartures))
	for i, slot := range syntheticDepartures {
		s := seed + uint64(i)*2654435761

		carrier := syntheticCarriers[s%uint64(len(syntheticCarriers))]
		duration := 90 + int(s%420)
		amount := float64(80 + (s>>8)%520)

		dep := time.Date(date.Year(), date.Month(), date.Day(), slot.hour, slot.minute, 0, 0, loc)
		arr := dep.Add(time.Duration(duration) * time.Minute)

		offer := models.Offer{
			ID:      fmt.Sprintf("synthetic-%s-%s-%d", origin, destination, i),
			Airline: carrier,
			FlightNumbers: []string{
				fmt.Sprintf("%s%d", carrier.Code, 100+(s>>4)%800),
			},
			Departure:       models.Endpoint{Airport: origin, Time: dep},
			Arrival:         models.Endpoint{Airport: destination, Time: arr},
			DurationMinutes: duration,
			Stops:           0,
			Price: models.Price{
				Amount:    amount,
				Currency:  req.Currency,
				Available: true,
				Formatted: currency.Format(amount, req.Currency),
			},
			CabinClass: req.CabinClass,
			Sources:    []string{models.SourceSynthetic},
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func routeSeed(origin, destination, date string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(origin + "|" + destination + "|" + date))
	return h.Sum64()
}
