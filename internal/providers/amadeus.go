package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avikara/travelmate/internal/models"
	"github.com/avikara/travelmate/internal/timezone"
	"github.com/avikara/travelmate/pkg/currency"
)

const amadeusDefaultBaseURL = "https://test.api.amadeus.com"

type AmadeusConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

// AmadeusProvider queries the Amadeus flight-offers-search API. Each call
// is two requests at most: one OAuth client-credentials exchange (tokens
// are reused until expiry) and one offer search.
type AmadeusProvider struct {
	cfg    AmadeusConfig
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewAmadeusProvider(cfg AmadeusConfig) *AmadeusProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = amadeusDefaultBaseURL
	}
	return &AmadeusProvider{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}
}

func (p *AmadeusProvider) Name() string {
	return "amadeus"
}

type amadeusTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type amadeusResponse struct {
	Data         []amadeusOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type amadeusOffer struct {
	ID               string                   `json:"id"`
	Itineraries      []amadeusItinerary       `json:"itineraries"`
	Price            amadeusPrice             `json:"price"`
	TravelerPricings []amadeusTravelerPricing `json:"travelerPricings"`
}

type amadeusItinerary struct {
	Duration string           `json:"duration"`
	Segments []amadeusSegment `json:"segments"`
}

type amadeusSegment struct {
	Departure   amadeusPoint `json:"departure"`
	Arrival     amadeusPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

type amadeusPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type amadeusPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type amadeusTravelerPricing struct {
	FareDetailsBySegment []struct {
		Cabin string `json:"cabin"`
	} `json:"fareDetailsBySegment"`
}

func (p *AmadeusProvider) Query(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	q := url.Values{}
	q.Set("originLocationCode", strings.ToUpper(req.Origin))
	q.Set("destinationLocationCode", strings.ToUpper(req.Destination))
	q.Set("departureDate", req.DepartureDate)
	q.Set("adults", strconv.Itoa(req.Passengers))
	q.Set("travelClass", amadeusCabin(req.CabinClass))
	q.Set("currencyCode", req.Currency)
	q.Set("max", "20")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.cfg.BaseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(p.Name(), fmt.Errorf("flight-offers request returned %d", resp.StatusCode))
	}

	var payload amadeusResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	offers := make([]models.Offer, 0, len(payload.Data))
	for _, raw := range payload.Data {
		offer, ok := p.normalize(raw, payload.Dictionaries.Carriers)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (p *AmadeusProvider) accessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.tokenExpiry) {
		return p.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.cfg.APIKey)
	form.Set("client_secret", p.cfg.APISecret)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned %d", resp.StatusCode)
	}

	var tok amadeusTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	p.token = tok.AccessToken
	// Renew one minute early so an almost-expired token is never sent.
	p.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return p.token, nil
}

func (p *AmadeusProvider) normalize(raw amadeusOffer, carriers map[string]string) (models.Offer, bool) {
	if len(raw.Itineraries) == 0 || len(raw.Itineraries[0].Segments) == 0 {
		return models.Offer{}, false
	}
	itin := raw.Itineraries[0]
	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	depTime, err := timezone.Parse(first.Departure.At, first.Departure.IATACode)
	if err != nil {
		return models.Offer{}, false
	}
	arrTime, err := timezone.Parse(last.Arrival.At, last.Arrival.IATACode)
	if err != nil {
		return models.Offer{}, false
	}

	numbers := make([]string, 0, len(itin.Segments))
	for _, seg := range itin.Segments {
		numbers = append(numbers, seg.CarrierCode+seg.Number)
	}

	layovers := make([]models.Layover, 0, len(itin.Segments)-1)
	for i := 1; i < len(itin.Segments); i++ {
		prev := itin.Segments[i-1]
		stopArr, err1 := timezone.Parse(prev.Arrival.At, prev.Arrival.IATACode)
		nextDep, err2 := timezone.Parse(itin.Segments[i].Departure.At, itin.Segments[i].Departure.IATACode)
		wait := 0
		if err1 == nil && err2 == nil {
			wait = int(nextDep.Sub(stopArr).Minutes())
		}
		layovers = append(layovers, models.Layover{
			Airport:         prev.Arrival.IATACode,
			DurationMinutes: wait,
		})
	}

	duration := parseISODuration(itin.Duration)
	if duration == 0 {
		duration = int(arrTime.Sub(depTime).Minutes())
	}

	price := models.UnavailablePrice()
	if amount, ok := currency.ParseAmount(raw.Price.Total); ok {
		price = models.Price{
			Amount:    amount,
			Currency:  raw.Price.Currency,
			Available: true,
			Formatted: currency.Format(amount, raw.Price.Currency),
		}
	}

	cabin := ""
	if len(raw.TravelerPricings) > 0 && len(raw.TravelerPricings[0].FareDetailsBySegment) > 0 {
		cabin = models.NormalizeCabinClass(raw.TravelerPricings[0].FareDetailsBySegment[0].Cabin)
	}

	offer := models.Offer{
		ID: "amadeus-" + raw.ID,
		Airline: models.Airline{
			Code: first.CarrierCode,
			Name: carriers[first.CarrierCode],
		},
		FlightNumbers:   numbers,
		Departure:       models.Endpoint{Airport: first.Departure.IATACode, Time: depTime},
		Arrival:         models.Endpoint{Airport: last.Arrival.IATACode, Time: arrTime},
		DurationMinutes: duration,
		Stops:           len(itin.Segments) - 1,
		Layovers:        layovers,
		Price:           price,
		CabinClass:      cabin,
	}
	offer.AddSource(p.Name())
	return offer, true
}

func amadeusCabin(cabin string) string {
	switch cabin {
	case models.CabinPremiumEconomy:
		return "PREMIUM_ECONOMY"
	case models.CabinBusiness:
		return "BUSINESS"
	case models.CabinFirst:
		return "FIRST"
	default:
		return "ECONOMY"
	}
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// parseISODuration converts the API's ISO-8601 durations ("PT7H30M") to
// minutes, returning 0 when the string does not match.
func parseISODuration(s string) int {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}
