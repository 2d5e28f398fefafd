package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 8*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.False(t, cfg.Amadeus.Configured())
	assert.False(t, cfg.SerpAPI.Configured())
	assert.False(t, cfg.AviationStack.Configured())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROVIDER_TIMEOUT", "10s")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("AMADEUS_API_KEY", "key")
	t.Setenv("AMADEUS_API_SECRET", "secret")
	t.Setenv("SERPAPI_API_KEY", "serp")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.CacheEnabled)
	assert.True(t, cfg.Amadeus.Configured())
	assert.True(t, cfg.SerpAPI.Configured())
	assert.False(t, cfg.AviationStack.Configured())
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "soon")
	cfg := Load()
	assert.Equal(t, 8*time.Second, cfg.ProviderTimeout)
}
