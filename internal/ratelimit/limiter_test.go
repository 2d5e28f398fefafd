package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitWithinBurst(t *testing.T) {
	l := New(Limit{RequestsPerSecond: 1, Burst: 3}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Wait(ctx, "amadeus"))
	}
}

func TestWaitHonorsContext(t *testing.T) {
	l := New(Limit{RequestsPerSecond: 0.001, Burst: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, l.Wait(ctx, "serpapi"))
	// Bucket empty; refill is ~17 minutes away, so the context wins.
	assert.Error(t, l.Wait(ctx, "serpapi"))
}

func TestPerProviderOverrides(t *testing.T) {
	l := New(Limit{RequestsPerSecond: 1, Burst: 1}, map[string]Limit{
		"aviationstack": {RequestsPerSecond: 1, Burst: 5},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Wait(ctx, "aviationstack"))
	}
}
