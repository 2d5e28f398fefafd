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
)

const aviationStackDefaultBaseURL = "https://api.aviationstack.com"

type AviationStackConfig struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

// AviationStackProvider queries the aviationstack schedules API. The API
// knows flight numbers and timetables but no fares, so every offer it
// produces carries an explicit unavailable price and relies on the
// reconciler to fill pricing in from another source.
type AviationStackProvider struct {
	cfg    AviationStackConfig
	client *http.Client
}

func NewAviationStackProvider(cfg AviationStackConfig) *AviationStackProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = aviationStackDefaultBaseURL
	}
	return &AviationStackProvider{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}
}

func (p *AviationStackProvider) Name() string {
	return "aviationstack"
}

type aviationStackResponse struct {
	Data []aviationStackFlight `json:"data"`
}

type aviationStackFlight struct {
	FlightDate string `json:"flight_date"`
	Airline    struct {
		Name string `json:"name"`
		IATA string `json:"iata"`
	} `json:"airline"`
	Flight struct {
		Number string `json:"number"`
		IATA   string `json:"iata"`
	} `json:"flight"`
	Departure aviationStackPoint `json:"departure"`
	Arrival   aviationStackPoint `json:"arrival"`
}

type aviationStackPoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

func (p *AviationStackProvider) Query(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	q := url.Values{}
	q.Set("access_key", p.cfg.AccessKey)
	q.Set("dep_iata", strings.ToUpper(req.Origin))
	q.Set("arr_iata", strings.ToUpper(req.Destination))
	q.Set("flight_date", req.DepartureDate)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.cfg.BaseURL+"/v1/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(p.Name(), fmt.Errorf("flights request returned %d", resp.StatusCode))
	}

	var payload aviationStackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	offers := make([]models.Offer, 0, len(payload.Data))
	for _, raw := range payload.Data {
		offer, ok := p.normalize(raw)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (p *AviationStackProvider) normalize(raw aviationStackFlight) (models.Offer, bool) {
	depTime, err := timezone.Parse(raw.Departure.Scheduled, raw.Departure.IATA)
	if err != nil {
		return models.Offer{}, false
	}
	arrTime, err := timezone.Parse(raw.Arrival.Scheduled, raw.Arrival.IATA)
	if err != nil {
		return models.Offer{}, false
	}

	number := raw.Flight.IATA
	if number == "" && raw.Airline.IATA != "" && raw.Flight.Number != "" {
		number = raw.Airline.IATA + raw.Flight.Number
	}
	if number == "" {
		return models.Offer{}, false
	}

	offer := models.Offer{
		ID: "aviationstack-" + uuid.NewString(),
		Airline: models.Airline{
			Code: raw.Airline.IATA,
			Name: raw.Airline.Name,
		},
		FlightNumbers: []string{number},
		Departure: models.Endpoint{
			Airport: raw.Departure.IATA,
			City:    raw.Departure.Airport,
			Time:    depTime,
		},
		Arrival: models.Endpoint{
			Airport: raw.Arrival.IATA,
			City:    raw.Arrival.Airport,
			Time:    arrTime,
		},
		DurationMinutes: int(arrTime.Sub(depTime).Minutes()),
		Stops:           0,
		Price:           models.UnavailablePrice(),
	}
	offer.AddSource(p.Name())
	return offer, true
}
