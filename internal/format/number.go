package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Customers type prices with a comma decimal separator ("1.234,56" or
// "123,00"), so comma-formatted input has to be normalized before any
// arithmetic sees it.

var numberCleaner = regexp.MustCompile(`[^\d,.\-]`)

// ParsePTNumber parses a Portuguese-formatted numeric string into a
// float64. Everything but digits, comma, period and minus is stripped and
// the first comma becomes the decimal point. Malformed input yields NaN,
// never an error.
func ParsePTNumber(value string) float64 {
	clean := numberCleaner.ReplaceAllString(value, "")
	standardized := strings.Replace(clean, ",", ".", 1)

	f, err := strconv.ParseFloat(standardized, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
