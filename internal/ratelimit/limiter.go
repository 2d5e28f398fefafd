package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type Limit struct {
	RequestsPerSecond float64
	Burst             int
}

func DefaultLimit() Limit {
	return Limit{RequestsPerSecond: 5, Burst: 10}
}

// ProviderLimiter holds one token bucket per flight-data provider so a
// burst of searches never exceeds any single provider's quota.
type ProviderLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	fallback Limit
}

// New builds a limiter with per-provider overrides; providers absent from
// the map get the fallback limit on first use.
func New(fallback Limit, overrides map[string]Limit) *ProviderLimiter {
	l := &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter, len(overrides)),
		fallback: fallback,
	}
	for provider, limit := range overrides {
		l.limiters[provider] = rate.NewLimiter(rate.Limit(limit.RequestsPerSecond), limit.Burst)
	}
	return l
}

func (l *ProviderLimiter) limiterFor(provider string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[provider]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok = l.limiters[provider]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(rate.Limit(l.fallback.RequestsPerSecond), l.fallback.Burst)
	l.limiters[provider] = limiter
	return limiter
}

// Wait blocks until the provider's bucket has a token or ctx is done.
func (l *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return l.limiterFor(provider).Wait(ctx)
}
