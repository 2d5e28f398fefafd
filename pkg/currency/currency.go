package currency

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)

// ParseAmount extracts a numeric amount from a provider price string such
// as "$1,234.56", "USD 450" or "1299". Strings with no numeric content
// ("check website", "call to book") return ok=false so callers can mark
// the price unavailable instead of coercing it to zero.
func ParseAmount(raw string) (float64, bool) {
	match := amountPattern.FindString(raw)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", "")
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// Format renders an amount with thousands separators, e.g. "USD 1,234.56".
func Format(amount float64, code string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := math.Floor(amount)
	cents := int(math.Round((amount - whole) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	intStr := fmt.Sprintf("%.0f", whole)
	formatted := addThousandsSeparator(intStr, ",")
	if cents > 0 {
		formatted = fmt.Sprintf("%s.%02d", formatted, cents)
	}

	result := formatted
	if code != "" {
		result = code + " " + formatted
	}
	if negative {
		result = "-" + result
	}
	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
