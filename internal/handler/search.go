package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avikara/travelmate/internal/engine"
	"github.com/avikara/travelmate/internal/models"
)

// Searcher is what the HTTP layer needs from the engine.
type Searcher interface {
	SearchFlights(ctx context.Context, req models.SearchRequest) (*engine.Result, error)
	SearchRoundTrip(ctx context.Context, req models.SearchRequest) (*engine.Result, *engine.Result, error)
}

type SearchHandler struct {
	engine Searcher
}

func NewSearchHandler(eng Searcher) *SearchHandler {
	return &SearchHandler{engine: eng}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if req.ReturnDate != nil && *req.ReturnDate != "" {
		return h.handleRoundTrip(c, req, startTime)
	}

	result, err := h.engine.SearchFlights(ctx, req)
	if err != nil {
		return searchError(c, err)
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: buildSearchCriteria(req),
		Metadata:       buildMetadata(result, len(result.Offers), startTime),
		Offers:         result.Offers,
	})
}

func (h *SearchHandler) handleRoundTrip(c echo.Context, req models.SearchRequest, startTime time.Time) error {
	ctx := c.Request().Context()

	outbound, returnLeg, err := h.engine.SearchRoundTrip(ctx, req)
	if err != nil {
		return searchError(c, err)
	}

	var returnOffers []models.Offer
	metadata := buildMetadata(outbound, len(outbound.Offers), startTime)
	if returnLeg != nil {
		returnOffers = returnLeg.Offers
		metadata.TotalResults += len(returnOffers)
		metadata.ProvidersQueried += returnLeg.ProvidersQueried
		metadata.ProvidersSucceeded += returnLeg.ProvidersSucceeded
		metadata.ProvidersFailed += returnLeg.ProvidersFailed
		metadata.FailedProviders = uniqueStrings(append(metadata.FailedProviders, returnLeg.FailedProviders...))
		metadata.Synthetic = metadata.Synthetic || returnLeg.Synthetic
		metadata.SearchTimeMs = time.Since(startTime).Milliseconds()
	}

	return c.JSON(http.StatusOK, models.RoundTripResponse{
		SearchCriteria: buildSearchCriteria(req),
		Metadata:       metadata,
		OutboundOffers: outbound.Offers,
		ReturnOffers:   returnOffers,
	})
}

func searchError(c echo.Context, err error) error {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "search_error",
		Message: "Failed to search flights: " + err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func buildMetadata(result *engine.Result, totalResults int, startTime time.Time) models.SearchMetadata {
	return models.SearchMetadata{
		TotalResults:       totalResults,
		ProvidersQueried:   result.ProvidersQueried,
		ProvidersSucceeded: result.ProvidersSucceeded,
		ProvidersFailed:    result.ProvidersFailed,
		FailedProviders:    result.FailedProviders,
		SearchTimeMs:       time.Since(startTime).Milliseconds(),
		CacheHit:           result.CacheHit,
		AirlineMatched:     result.AirlineMatched,
		Synthetic:          result.Synthetic,
	}
}

func buildSearchCriteria(req models.SearchRequest) models.SearchCriteria {
	return models.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		CabinClass:    req.CabinClass,
		Currency:      req.Currency,
		Airline:       req.Airline,
	}
}

func uniqueStrings(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
