package format

import "github.com/nyaruka/phonenumbers"

// defaultRegion is assumed for numbers entered without a country prefix.
const defaultRegion = "PT"

// Phone renders a phone number in international display form
// ("+351 21 094 2000"). Input that cannot be parsed is returned as-is;
// empty input stays empty.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// IsPossiblePhone reports whether the input is a plausible phone number,
// by length and prefix rather than carrier allocation.
func IsPossiblePhone(phone string) bool {
	num, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}
