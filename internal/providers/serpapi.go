package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avikara/travelmate/internal/models"
	"github.com/avikara/travelmate/internal/timezone"
	"github.com/avikara/travelmate/pkg/currency"
)

const serpAPIDefaultBaseURL = "https://serpapi.com"

type SerpAPIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// SerpAPIProvider queries Google Flights through SerpAPI. It returns the
// richest per-segment itinerary detail of all adapters, which makes it the
// preferred base record when duplicate offers are merged.
type SerpAPIProvider struct {
	cfg    SerpAPIConfig
	client *http.Client
}

func NewSerpAPIProvider(cfg SerpAPIConfig) *SerpAPIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = serpAPIDefaultBaseURL
	}
	return &SerpAPIProvider{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}
}

func (p *SerpAPIProvider) Name() string {
	return "serpapi"
}

type serpResponse struct {
	BestFlights  []serpItinerary `json:"best_flights"`
	OtherFlights []serpItinerary `json:"other_flights"`
}

type serpItinerary struct {
	Flights       []serpLeg     `json:"flights"`
	Layovers      []serpLayover `json:"layovers"`
	TotalDuration int           `json:"total_duration"`
	Price         float64       `json:"price"`
}

type serpLeg struct {
	DepartureAirport serpAirport `json:"departure_airport"`
	ArrivalAirport   serpAirport `json:"arrival_airport"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
	TravelClass      string      `json:"travel_class"`
	Duration         int         `json:"duration"`
}

type serpAirport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type serpLayover struct {
	Duration int    `json:"duration"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

func (p *SerpAPIProvider) Query(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("departure_id", strings.ToUpper(req.Origin))
	q.Set("arrival_id", strings.ToUpper(req.Destination))
	q.Set("outbound_date", req.DepartureDate)
	q.Set("type", "2") // one way; round trips are searched leg by leg
	q.Set("currency", req.Currency)
	q.Set("hl", "en")
	q.Set("api_key", p.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.cfg.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(p.Name(), fmt.Errorf("search request returned %d", resp.StatusCode))
	}

	var payload serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	itineraries := append(payload.BestFlights, payload.OtherFlights...)
	offers := make([]models.Offer, 0, len(itineraries))
	for _, itin := range itineraries {
		offer, ok := p.normalize(itin, req.Currency)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (p *SerpAPIProvider) normalize(itin serpItinerary, cur string) (models.Offer, bool) {
	if len(itin.Flights) == 0 {
		return models.Offer{}, false
	}
	first := itin.Flights[0]
	last := itin.Flights[len(itin.Flights)-1]

	depTime, err := timezone.Parse(first.DepartureAirport.Time, first.DepartureAirport.ID)
	if err != nil {
		return models.Offer{}, false
	}
	arrTime, err := timezone.Parse(last.ArrivalAirport.Time, last.ArrivalAirport.ID)
	if err != nil {
		return models.Offer{}, false
	}

	numbers := make([]string, 0, len(itin.Flights))
	for _, leg := range itin.Flights {
		if leg.FlightNumber != "" {
			numbers = append(numbers, leg.FlightNumber)
		}
	}

	layovers := make([]models.Layover, 0, len(itin.Layovers))
	for _, l := range itin.Layovers {
		layovers = append(layovers, models.Layover{
			Airport:         l.ID,
			City:            l.Name,
			DurationMinutes: l.Duration,
		})
	}

	duration := itin.TotalDuration
	if duration == 0 {
		duration = int(arrTime.Sub(depTime).Minutes())
	}

	// Google reports no fare for some itineraries; a zero price means
	// "unavailable", never free. Amounts come back in the currency the
	// query asked for, so the tag follows the request.
	price := models.UnavailablePrice()
	if itin.Price > 0 {
		if cur == "" {
			cur = "USD"
		}
		price = models.Price{
			Amount:    itin.Price,
			Currency:  cur,
			Available: true,
			Formatted: currency.Format(itin.Price, cur),
		}
	}

	offer := models.Offer{
		ID: "serpapi-" + uuid.NewString(),
		Airline: models.Airline{
			// Mixed-carrier itineraries come back as "Multiple airlines";
			// the reconciler drops those placeholder records.
			Name: first.Airline,
			Code: carrierCodeFromFlightNumber(first.FlightNumber),
		},
		FlightNumbers: numbers,
		Departure: models.Endpoint{
			Airport: first.DepartureAirport.ID,
			City:    first.DepartureAirport.Name,
			Time:    depTime,
		},
		Arrival: models.Endpoint{
			Airport: last.ArrivalAirport.ID,
			City:    last.ArrivalAirport.Name,
			Time:    arrTime,
		},
		DurationMinutes: duration,
		Stops:           len(itin.Flights) - 1,
		Layovers:        layovers,
		Price:           price,
		CabinClass:      models.NormalizeCabinClass(first.TravelClass),
	}
	offer.AddSource(p.Name())
	return offer, true
}

// carrierCodeFromFlightNumber pulls the IATA prefix out of numbers like
// "AA 100" or "IB3166". Empty when the number has no letter prefix.
func carrierCodeFromFlightNumber(n string) string {
	n = strings.ToUpper(strings.TrimSpace(n))
	i := 0
	for i < len(n) && n[i] >= 'A' && n[i] <= 'Z' {
		i++
	}
	if i < 2 || i > 3 {
		return ""
	}
	return n[:i]
}
