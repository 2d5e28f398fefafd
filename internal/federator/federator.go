package federator

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/avikara/travelmate/internal/models"
	"github.com/avikara/travelmate/internal/providers"
	"github.com/avikara/travelmate/internal/ratelimit"
)

type Config struct {
	// ProviderTimeout bounds each provider query independently; a slow
	// provider is abandoned without affecting the others.
	ProviderTimeout time.Duration
	// Timeouts overrides ProviderTimeout per provider name.
	Timeouts    map[string]time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.ProviderLimiter
}

const defaultProviderTimeout = 8 * time.Second

// Federator fans a search out to every configured provider concurrently
// and collects whatever comes back in time. Provider failures are logged
// and absorbed; the only error Federate itself returns is a caller context
// that was already dead before launch.
type Federator struct {
	providers []providers.Provider
	fallback  providers.Provider
	cfg       Config
	log       *zap.Logger
}

type Result struct {
	Offers             []models.Offer
	ProvidersQueried   int
	ProvidersSucceeded int
	ProvidersFailed    int
	FailedProviders    []string
	Synthetic          bool
}

func New(providerList []providers.Provider, fallback providers.Provider, cfg Config, log *zap.Logger) *Federator {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Federator{
		providers: providerList,
		fallback:  fallback,
		cfg:       cfg,
		log:       log,
	}
}

func (f *Federator) timeoutFor(provider string) time.Duration {
	if t, ok := f.cfg.Timeouts[provider]; ok && t > 0 {
		return t
	}
	return f.cfg.ProviderTimeout
}

func (f *Federator) Federate(ctx context.Context, req models.SearchRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Offers:           make([]models.Offer, 0),
		ProvidersQueried: len(f.providers),
	}

	type providerResult struct {
		provider string
		offers   []models.Offer
		err      error
	}

	resultCh := make(chan providerResult, len(f.providers))

	for _, p := range f.providers {
		go func(provider providers.Provider) {
			// Each unit carries its own deadline; the ctx cancellation
			// also stops any in-flight HTTP request, so a timed-out unit
			// cannot contribute a late result.
			unitCtx, cancel := context.WithTimeout(ctx, f.timeoutFor(provider.Name()))
			defer cancel()

			if f.cfg.RateLimiter != nil {
				if err := f.cfg.RateLimiter.Wait(unitCtx, provider.Name()); err != nil {
					resultCh <- providerResult{provider: provider.Name(), err: err}
					return
				}
			}

			offers, err := f.queryWithRetry(unitCtx, provider, req)
			resultCh <- providerResult{provider: provider.Name(), offers: offers, err: err}
		}(p)
	}

	// Join barrier: every unit either completed or hit its own deadline.
	// The collector goroutine is the only writer to the combined list.
	for i := 0; i < len(f.providers); i++ {
		pr := <-resultCh
		if pr.err != nil {
			f.log.Warn("provider query failed",
				zap.String("provider", pr.provider),
				zap.Error(pr.err))
			result.ProvidersFailed++
			result.FailedProviders = append(result.FailedProviders, pr.provider)
			continue
		}
		result.ProvidersSucceeded++
		for _, offer := range pr.offers {
			offer.AddSource(pr.provider)
			result.Offers = append(result.Offers, offer)
		}
	}
	sort.Strings(result.FailedProviders)

	if len(result.Offers) == 0 && f.fallback != nil {
		offers, err := f.fallback.Query(ctx, req)
		if err != nil {
			return nil, err
		}
		f.log.Info("all providers empty or failed, using synthetic fallback",
			zap.Int("failed", result.ProvidersFailed))
		result.Offers = offers
		result.Synthetic = true
	}

	return result, nil
}

func (f *Federator) queryWithRetry(ctx context.Context, provider providers.Provider, req models.SearchRequest) ([]models.Offer, error) {
	var lastErr error

	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if attempt > 0 && len(f.cfg.RetryDelays) > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(f.cfg.RetryDelays) {
				delayIdx = len(f.cfg.RetryDelays) - 1
			}
			select {
			case <-time.After(f.cfg.RetryDelays[delayIdx]):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		offers, err := provider.Query(ctx, req)
		if err == nil {
			return offers, nil
		}

		lastErr = err
		f.log.Warn("provider attempt failed",
			zap.String("provider", provider.Name()),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return nil, lastErr
}
