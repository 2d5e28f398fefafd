package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/avikara/travelmate/internal/cache"
	"github.com/avikara/travelmate/internal/config"
	"github.com/avikara/travelmate/internal/engine"
	"github.com/avikara/travelmate/internal/federator"
	"github.com/avikara/travelmate/internal/handler"
	"github.com/avikara/travelmate/internal/providers"
	"github.com/avikara/travelmate/internal/ratelimit"
	"github.com/avikara/travelmate/internal/resolver"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	providerList := buildProviders(cfg, log)

	rateLimiter := ratelimit.New(ratelimit.DefaultLimit(), map[string]ratelimit.Limit{
		"amadeus":       {RequestsPerSecond: 10, Burst: 20},
		"serpapi":       {RequestsPerSecond: 5, Burst: 10},
		"aviationstack": {RequestsPerSecond: 1, Burst: 5},
	})

	fed := federator.New(providerList, providers.NewSyntheticProvider(), federator.Config{
		ProviderTimeout: cfg.ProviderTimeout,
		Timeouts: map[string]time.Duration{
			// Amadeus needs headroom for the token exchange.
			"amadeus": cfg.ProviderTimeout + 2*time.Second,
		},
		MaxRetries: 2,
		RetryDelays: []time.Duration{
			200 * time.Millisecond,
			500 * time.Millisecond,
		},
		RateLimiter: rateLimiter,
	}, log)

	var offerCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		offerCache = redisCache
		log.Info("redis cache enabled",
			zap.String("addr", cfg.RedisHost+":"+cfg.RedisPort),
			zap.Duration("ttl", cfg.RedisTTL))
	} else {
		offerCache = cache.NewNoOpCache()
		log.Info("cache disabled")
	}
	defer offerCache.Close()

	eng := engine.New(resolver.New(nil, log), fed, offerCache, log)
	searchHandler := handler.NewSearchHandler(eng)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Info("starting flight search server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildProviders returns the adapters whose credentials are present. With
// no credentials at all the list is empty and every search is served by
// the synthetic fallback.
func buildProviders(cfg *config.Config, log *zap.Logger) []providers.Provider {
	var providerList []providers.Provider

	if cfg.SerpAPI.Configured() {
		providerList = append(providerList, providers.NewSerpAPIProvider(providers.SerpAPIConfig{
			APIKey:  cfg.SerpAPI.APIKey,
			BaseURL: cfg.SerpAPI.BaseURL,
			Timeout: cfg.ProviderTimeout,
		}))
	}
	if cfg.Amadeus.Configured() {
		providerList = append(providerList, providers.NewAmadeusProvider(providers.AmadeusConfig{
			APIKey:    cfg.Amadeus.APIKey,
			APISecret: cfg.Amadeus.APISecret,
			BaseURL:   cfg.Amadeus.BaseURL,
			Timeout:   cfg.ProviderTimeout,
		}))
	}
	if cfg.AviationStack.Configured() {
		providerList = append(providerList, providers.NewAviationStackProvider(providers.AviationStackConfig{
			AccessKey: cfg.AviationStack.AccessKey,
			BaseURL:   cfg.AviationStack.BaseURL,
			Timeout:   cfg.ProviderTimeout,
		}))
	}

	names := make([]string, len(providerList))
	for i, p := range providerList {
		names[i] = p.Name()
	}
	log.Info("initialized flight providers", zap.Strings("providers", names))
	return providerList
}
