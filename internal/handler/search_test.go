package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avikara/travelmate/internal/engine"
	"github.com/avikara/travelmate/internal/models"
)

// MockSearcher implements the Searcher interface
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) SearchFlights(ctx context.Context, req models.SearchRequest) (*engine.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.Result), args.Error(1)
}

func (m *MockSearcher) SearchRoundTrip(ctx context.Context, req models.SearchRequest) (*engine.Result, *engine.Result, error) {
	args := m.Called(ctx, req)
	var outbound, returnLeg *engine.Result
	if args.Get(0) != nil {
		outbound = args.Get(0).(*engine.Result)
	}
	if args.Get(1) != nil {
		returnLeg = args.Get(1).(*engine.Result)
	}
	return outbound, returnLeg, args.Error(2)
}

func doSearch(t *testing.T, searcher Searcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewSearchHandler(searcher)
	require.NoError(t, h.Search(c))
	return rec
}

func sampleResult() *engine.Result {
	return &engine.Result{
		Offers: []models.Offer{
			{
				ID:            "amadeus-1",
				Airline:       models.Airline{Code: "IB", Name: "Iberia"},
				FlightNumbers: []string{"IB6252"},
				Departure:     models.Endpoint{Airport: "JFK", Time: time.Date(2025, 7, 7, 22, 5, 0, 0, time.UTC)},
				Arrival:       models.Endpoint{Airport: "MAD", Time: time.Date(2025, 7, 8, 6, 40, 0, 0, time.UTC)},
				Price:         models.Price{Amount: 598, Currency: "USD", Available: true},
				Sources:       []string{"amadeus"},
			},
		},
		AirlineMatched:     true,
		ProvidersQueried:   3,
		ProvidersSucceeded: 2,
		ProvidersFailed:    1,
		FailedProviders:    []string{"aviationstack"},
	}
}

func TestSearchSuccess(t *testing.T) {
	searcher := new(MockSearcher)
	searcher.On("SearchFlights", mock.Anything, mock.Anything).Return(sampleResult(), nil)

	rec := doSearch(t, searcher, `{"origin": "JFK", "destination": "MAD", "departure_date": "2025-07-07", "airline": "Iberia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Metadata.TotalResults)
	assert.Equal(t, 3, resp.Metadata.ProvidersQueried)
	assert.Equal(t, []string{"aviationstack"}, resp.Metadata.FailedProviders)
	assert.True(t, resp.Metadata.AirlineMatched)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "IB", resp.Offers[0].Airline.Code)
	searcher.AssertExpectations(t)
}

func TestSearchValidationError(t *testing.T) {
	searcher := new(MockSearcher)
	searcher.On("SearchFlights", mock.Anything, mock.Anything).Return(nil, models.ErrMissingOrigin)

	rec := doSearch(t, searcher, `{"destination": "MAD", "departure_date": "2025-07-07"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, models.ErrMissingOrigin.Error(), resp.Message)
}

func TestSearchMalformedBody(t *testing.T) {
	searcher := new(MockSearcher)

	rec := doSearch(t, searcher, `{"origin": 17}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
	searcher.AssertNotCalled(t, "SearchFlights")
}

func TestSearchRoundTrip(t *testing.T) {
	searcher := new(MockSearcher)
	returnLeg := sampleResult()
	returnLeg.ProvidersQueried = 3
	returnLeg.ProvidersSucceeded = 3
	returnLeg.ProvidersFailed = 0
	returnLeg.FailedProviders = nil
	searcher.On("SearchRoundTrip", mock.Anything, mock.Anything).Return(sampleResult(), returnLeg, nil)

	rec := doSearch(t, searcher, `{"origin": "JFK", "destination": "MAD", "departure_date": "2025-07-07", "return_date": "2025-07-14"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RoundTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.OutboundOffers, 1)
	assert.Len(t, resp.ReturnOffers, 1)
	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, 6, resp.Metadata.ProvidersQueried)
	searcher.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
