// Package airline narrows a canonical offer list to a preferred carrier,
// resolving the preference through a multilingual alias table and
// degrading gracefully when the carrier does not fly the route.
package airline

import (
	"fmt"
	"strings"

	"github.com/avikara/travelmate/internal/models"
)

// advisoryLimit caps how many returned offers carry the "airline not
// found" note when the filter falls back to the full list.
const advisoryLimit = 3

// FilterByAirline keeps offers operated by the carrier the preference
// resolves to. An empty preference disables the filter. When the carrier
// matches nothing on this route, the original list comes back unchanged
// with matched=false and an advisory note on the first few offers, so the
// conversational layer can apologize instead of returning nothing.
func FilterByAirline(offers []models.Offer, preference string) ([]models.Offer, bool) {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return offers, false
	}

	matchSet := resolveAliases(preference)
	if len(matchSet) == 0 {
		// Unknown airline name; still try the raw preference against
		// offer fields so partial names like "iber" can hit.
		matchSet = []string{strings.ToLower(preference)}
	}

	kept := make([]models.Offer, 0, len(offers))
	for _, offer := range offers {
		if offerMatches(offer, matchSet) {
			kept = append(kept, offer)
		}
	}

	if len(kept) > 0 {
		return kept, true
	}

	annotated := make([]models.Offer, len(offers))
	copy(annotated, offers)
	note := fmt.Sprintf("requested airline %q not found on this route and date; showing all airlines", preference)
	for i := 0; i < len(annotated) && i < advisoryLimit; i++ {
		annotated[i].Note = note
	}
	return annotated, false
}

// resolveAliases collects the full alias and code set of every canonical
// carrier whose aliases or codes match the preference, substring in
// either direction.
func resolveAliases(preference string) []string {
	norm := strings.ToLower(preference)

	var matches []string
	for _, entry := range aliasTable {
		matched := false
		for _, alias := range entry.aliases {
			if strings.Contains(norm, alias) || strings.Contains(alias, norm) {
				matched = true
				break
			}
		}
		if !matched {
			for _, code := range entry.codes {
				if strings.EqualFold(code, norm) {
					matched = true
					break
				}
			}
		}
		if matched {
			matches = append(matches, entry.aliases...)
			for _, code := range entry.codes {
				matches = append(matches, strings.ToLower(code))
			}
		}
	}
	return matches
}

func offerMatches(offer models.Offer, matchSet []string) bool {
	name := strings.ToLower(offer.Airline.Name)
	code := strings.ToLower(offer.Airline.Code)

	for _, candidate := range matchSet {
		if code != "" && code == candidate {
			return true
		}
		if name == "" {
			continue
		}
		if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
			return true
		}
	}
	return false
}
