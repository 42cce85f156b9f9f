package geoip

import "strings"

// CountrySet is a set of ISO country codes with case-insensitive membership.
type CountrySet map[string]bool

// DefaultCountries is the fixed set of country codes retained when stripping
// a GeoIP data set.
var DefaultCountries = NewCountrySet(
	"DE", "GB", "FR", "NL", "RU", "US", "TR", "IT", "ES", "PL",
	"UA", "KZ", "AE", "IL", "CN", "BR", "JP", "KR", "IN", "AU", "CA",
)

// NewCountrySet creates a CountrySet containing the given codes.
func NewCountrySet(codes ...string) CountrySet {
	s := make(CountrySet)
	for _, code := range codes {
		s[strings.ToUpper(code)] = true
	}

	return s
}

// Contains tells whether code is a member of the set.
func (s CountrySet) Contains(code string) bool {
	return s[strings.ToUpper(code)]
}
