package resolver

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Lookup is an optional online place-name resolver. It is treated as a
// black box; any error makes Resolve fall through to the static fallback.
type Lookup interface {
	LookupIATA(ctx context.Context, place string) (string, error)
}

type Resolver struct {
	lookup Lookup
	log    *zap.Logger
}

func New(lookup Lookup, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{lookup: lookup, log: log}
}

// Resolve maps free-text city or airport input to a 3-letter IATA code.
// It never fails: inputs already shaped like a code pass through, known
// city names (in any covered language) resolve via the alias table, and
// everything else falls back to the online lookup if configured, then to
// the first three letters of the input. The last fallback is crude and
// non-authoritative; it exists so an unknown city never aborts a search.
func (r *Resolver) Resolve(ctx context.Context, text string) string {
	trimmed := strings.TrimSpace(text)
	if isIATACode(trimmed) {
		return trimmed
	}

	// Inputs shorter than 3 letters skip the table: they would trivially
	// be contained in some alias and match the wrong city.
	normalized := strings.ToLower(trimmed)
	if len(normalized) >= 3 {
		for _, entry := range cityAliases {
			for _, alias := range entry.aliases {
				if strings.Contains(normalized, alias) || strings.Contains(alias, normalized) {
					return entry.code
				}
			}
		}
	}

	if r.lookup != nil {
		code, err := r.lookup.LookupIATA(ctx, trimmed)
		if err == nil && isIATACode(code) {
			return code
		}
		if err != nil {
			r.log.Warn("online place lookup failed", zap.String("place", trimmed), zap.Error(err))
		}
	}

	return crudeFallback(normalized)
}

func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// crudeFallback upper-cases the first three letters of the input, padding
// with X when the input is shorter. The result is a guess, not a verified
// airport code.
func crudeFallback(s string) string {
	letters := make([]rune, 0, 3)
	for _, c := range s {
		if c > unicode.MaxASCII || !unicode.IsLetter(c) {
			continue
		}
		letters = append(letters, unicode.ToUpper(c))
		if len(letters) == 3 {
			break
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return string(letters)
}
