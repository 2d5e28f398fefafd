// Package engine wires the search pipeline together: resolve the route,
// federate across providers, reconcile duplicates, apply the airline
// preference, rank. The pipeline holds no state between calls; every
// search is recomputed from its inputs and the static alias tables.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/avikara/travelmate/internal/airline"
	"github.com/avikara/travelmate/internal/cache"
	"github.com/avikara/travelmate/internal/federator"
	"github.com/avikara/travelmate/internal/models"
	"github.com/avikara/travelmate/internal/ranker"
	"github.com/avikara/travelmate/internal/reconciler"
	"github.com/avikara/travelmate/internal/resolver"
)

type Engine struct {
	resolver  *resolver.Resolver
	federator *federator.Federator
	cache     cache.Cache
	log       *zap.Logger
}

type Result struct {
	Offers             []models.Offer
	AirlineMatched     bool
	CacheHit           bool
	Synthetic          bool
	ProvidersQueried   int
	ProvidersSucceeded int
	ProvidersFailed    int
	FailedProviders    []string
}

func New(res *resolver.Resolver, fed *federator.Federator, c cache.Cache, log *zap.Logger) *Engine {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		resolver:  res,
		federator: fed,
		cache:     c,
		log:       log,
	}
}

// SearchFlights is the one operation the conversational layer calls. It
// always returns a non-empty, ranked offer list on success; the only
// errors are an invalid request shape and a dead caller context.
func (e *Engine) SearchFlights(ctx context.Context, req models.SearchRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Origin = e.resolver.Resolve(ctx, req.Origin)
	req.Destination = e.resolver.Resolve(ctx, req.Destination)

	result := &Result{}

	canonical, hit := e.cache.Get(ctx, req)
	if hit {
		result.CacheHit = true
	} else {
		fedResult, err := e.federator.Federate(ctx, req)
		if err != nil {
			return nil, err
		}
		canonical = reconciler.Reconcile(fedResult.Offers)
		result.Synthetic = fedResult.Synthetic
		result.ProvidersQueried = fedResult.ProvidersQueried
		result.ProvidersSucceeded = fedResult.ProvidersSucceeded
		result.ProvidersFailed = fedResult.ProvidersFailed
		result.FailedProviders = fedResult.FailedProviders

		// Synthetic results are placeholders; caching them would mask a
		// provider recovery for the whole TTL.
		if !fedResult.Synthetic {
			if err := e.cache.Set(ctx, req, canonical); err != nil {
				e.log.Warn("offer cache write failed", zap.Error(err))
			}
		}
	}

	filtered, matched := airline.FilterByAirline(canonical, req.Airline)
	result.AirlineMatched = matched
	result.Offers = ranker.Rank(filtered)
	return result, nil
}

// SearchRoundTrip searches the outbound and return legs concurrently.
// A failed return leg degrades to an outbound-only result rather than
// failing the whole request.
func (e *Engine) SearchRoundTrip(ctx context.Context, req models.SearchRequest) (*Result, *Result, error) {
	if req.ReturnDate == nil || *req.ReturnDate == "" {
		outbound, err := e.SearchFlights(ctx, req)
		return outbound, nil, err
	}

	returnReq := models.SearchRequest{
		Origin:        req.Destination,
		Destination:   req.Origin,
		DepartureDate: *req.ReturnDate,
		Passengers:    req.Passengers,
		CabinClass:    req.CabinClass,
		Currency:      req.Currency,
		Airline:       req.Airline,
	}

	type legResult struct {
		result   *Result
		err      error
		isReturn bool
	}

	resultCh := make(chan legResult, 2)

	outboundReq := req
	outboundReq.ReturnDate = nil

	go func() {
		result, err := e.SearchFlights(ctx, outboundReq)
		resultCh <- legResult{result: result, err: err}
	}()
	go func() {
		result, err := e.SearchFlights(ctx, returnReq)
		resultCh <- legResult{result: result, err: err, isReturn: true}
	}()

	var outbound, returnLeg *Result
	var outboundErr, returnErr error

	for i := 0; i < 2; i++ {
		lr := <-resultCh
		if lr.isReturn {
			returnLeg, returnErr = lr.result, lr.err
		} else {
			outbound, outboundErr = lr.result, lr.err
		}
	}

	if outboundErr != nil {
		return nil, nil, outboundErr
	}
	if returnErr != nil {
		e.log.Warn("return leg search failed", zap.Error(returnErr))
		return outbound, nil, nil
	}
	return outbound, returnLeg, nil
}
