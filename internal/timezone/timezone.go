package timezone

import (
	"strconv"
	"strings"
	"time"
)

// Fixed offsets for the airports the providers commonly return. DST is
// deliberately ignored: provider payloads carry local wall-clock times and
// a fixed offset keeps parsing deterministic across environments without
// a tzdata dependency.
var airportOffsets = map[string]int{
	// Americas
	"JFK": -5, "EWR": -5, "BOS": -5, "MIA": -5, "ATL": -5, "YYZ": -5,
	"ORD": -6, "DFW": -6, "MEX": -6,
	"DEN": -7,
	"LAX": -8, "SFO": -8, "SEA": -8, "YVR": -8,
	"GRU": -3, "EZE": -3, "SCL": -4, "BOG": -5, "LIM": -5,

	// Europe
	"LHR": 0, "LGW": 0, "LIS": 0, "DUB": 0,
	"CDG": 1, "ORY": 1, "MAD": 1, "BCN": 1, "FCO": 1, "FRA": 1,
	"MUC": 1, "AMS": 1, "BER": 1, "ZRH": 1, "VIE": 1, "BRU": 1,
	"ATH": 2, "IST": 3, "SVO": 3,

	// Middle East / Asia / Oceania
	"DXB": 4, "DOH": 3, "DEL": 5, "BOM": 5,
	"BKK": 7, "SIN": 8, "HKG": 8, "PEK": 8, "PVG": 8,
	"HND": 9, "NRT": 9, "ICN": 9, "SYD": 10,
}

// LocationFor returns a fixed-offset location for an airport code, or UTC
// when the airport is unknown.
func LocationFor(airport string) *time.Location {
	offset, ok := airportOffsets[strings.ToUpper(airport)]
	if !ok {
		return time.UTC
	}
	name := "UTC"
	switch {
	case offset > 0:
		name = "UTC+" + strconv.Itoa(offset)
	case offset < 0:
		name = "UTC-" + strconv.Itoa(-offset)
	}
	return time.FixedZone(name, offset*60*60)
}

// Parse tries the timestamp layouts seen across provider responses, in
// order. Layouts without an explicit offset are interpreted in the given
// airport's local zone.
func Parse(value, airport string) (time.Time, error) {
	withOffset := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05Z",
	}
	for _, layout := range withOffset {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	loc := LocationFor(airport)
	local := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
	for _, layout := range local {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{
		Value:   value,
		Message: "unable to parse time string",
	}
}
