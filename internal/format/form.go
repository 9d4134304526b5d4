package format

import (
	"regexp"
	"strings"
)

var postalCodePattern = regexp.MustCompile(`^\d{7}$`)

// NIF renders a taxpayer number in display form, a space after every group
// of 3 digits ("123456789" → "123 456 789"). Callers validate the 9-digit
// shape before formatting.
func NIF(nif string) string {
	if len(nif) <= 3 {
		return nif
	}
	var groups []string
	for i := 0; i < len(nif); i += 3 {
		end := i + 3
		if end > len(nif) {
			end = len(nif)
		}
		groups = append(groups, nif[i:end])
	}
	return strings.Join(groups, " ")
}

// PostalCode hyphenates a raw 7-digit postal code ("1500463" → "1500-463").
// Anything else is returned unchanged.
func PostalCode(code string) string {
	if !postalCodePattern.MatchString(code) {
		return code
	}
	return code[:4] + "-" + code[4:]
}
