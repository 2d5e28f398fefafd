package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLookup struct {
	code string
	err  error
}

func (s *stubLookup) LookupIATA(ctx context.Context, place string) (string, error) {
	return s.code, s.err
}

func TestResolveCodePassthrough(t *testing.T) {
	r := New(nil, nil)
	assert.Equal(t, "JFK", r.Resolve(context.Background(), "JFK"))
	assert.Equal(t, "MAD", r.Resolve(context.Background(), " MAD "))
}

func TestResolveAliases(t *testing.T) {
	r := New(nil, nil)

	tests := []struct {
		input string
		want  string
	}{
		{"Madrid", "MAD"},
		{"new york", "JFK"},
		{"Nueva York", "JFK"},
		{"Londres", "LHR"},
		{"tokio", "HND"},
		{"Ciudad de México", "MEX"},
		// input contains a known key
		{"madrid barajas airport", "MAD"},
		// known key contains the input
		{"barcelon", "BCN"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(context.Background(), tt.input))
		})
	}
}

func TestResolveOnlineLookup(t *testing.T) {
	r := New(&stubLookup{code: "TRD"}, nil)
	assert.Equal(t, "TRD", r.Resolve(context.Background(), "Trondheim"))
}

func TestResolveLookupFailureFallsBack(t *testing.T) {
	r := New(&stubLookup{err: errors.New("offline")}, nil)
	assert.Equal(t, "TRO", r.Resolve(context.Background(), "Trondheim"))
}

func TestResolveCrudeFallback(t *testing.T) {
	r := New(nil, nil)

	// Unknown cities still produce a 3-letter code.
	assert.Equal(t, "ZAM", r.Resolve(context.Background(), "Zamora"))
	assert.Equal(t, "AXX", r.Resolve(context.Background(), "a"))
	assert.Equal(t, "XXX", r.Resolve(context.Background(), ""))
}

func TestResolveAlwaysThreeChars(t *testing.T) {
	r := New(nil, nil)
	inputs := []string{"", "x", "xy", "lhr", "LHRX", "ñ", "quito", "929", "MAD"}
	for _, input := range inputs {
		assert.Len(t, r.Resolve(context.Background(), input), 3, "input %q", input)
	}
}
