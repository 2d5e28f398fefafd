package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/avikara/travelmate/internal/models"
)

// Provider is one external flight-data source. Query returns whatever the
// source knows about the requested route and date, already normalized.
// An empty slice is a valid success; errors are reserved for transport,
// auth and parse failures.
type Provider interface {
	Name() string
	Query(ctx context.Context, req models.SearchRequest) ([]models.Offer, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}

// newHTTPClient builds the client an adapter owns. Each adapter gets its
// own client so one slow provider cannot exhaust another's connections.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
