// Package config loads everything the engine consumes from its
// environment. Provider credentials are opaque here; their presence or
// absence decides which adapters are eligible for a search.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration

	// ProviderTimeout is the per-provider query deadline; each provider
	// unit gets its own, the whole search is bounded by the slowest.
	ProviderTimeout time.Duration

	Amadeus       AmadeusCredentials
	SerpAPI       SerpAPICredentials
	AviationStack AviationStackCredentials
}

type AmadeusCredentials struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

func (c AmadeusCredentials) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

type SerpAPICredentials struct {
	APIKey  string
	BaseURL string
}

func (c SerpAPICredentials) Configured() bool {
	return c.APIKey != ""
}

type AviationStackCredentials struct {
	AccessKey string
	BaseURL   string
}

func (c AviationStackCredentials) Configured() bool {
	return c.AccessKey != ""
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 8*time.Second),
		Amadeus: AmadeusCredentials{
			APIKey:    os.Getenv("AMADEUS_API_KEY"),
			APISecret: os.Getenv("AMADEUS_API_SECRET"),
			BaseURL:   os.Getenv("AMADEUS_BASE_URL"),
		},
		SerpAPI: SerpAPICredentials{
			APIKey:  os.Getenv("SERPAPI_API_KEY"),
			BaseURL: os.Getenv("SERPAPI_BASE_URL"),
		},
		AviationStack: AviationStackCredentials{
			AccessKey: os.Getenv("AVIATIONSTACK_ACCESS_KEY"),
			BaseURL:   os.Getenv("AVIATIONSTACK_BASE_URL"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
