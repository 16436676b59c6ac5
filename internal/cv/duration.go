package cv

import (
	"regexp"
	"strconv"
)

// CVs from the local job boards mix Mongolian and English unit words, so both
// are matched. Anything else in the string is ignored.
var (
	yearsPattern  = regexp.MustCompile(`(\d+)\s*(?:жил|year)`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*(?:сар|month)`)
)

// ParseDuration converts a free-text experience duration such as
// "3 жил 6 сар" into fractional years. Missing year or month tokens
// contribute zero; the function never fails.
func ParseDuration(text string) float64 {
	var years, months int

	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		years, _ = strconv.Atoi(m[1])
	}
	if m := monthsPattern.FindStringSubmatch(text); m != nil {
		months, _ = strconv.Atoi(m[1])
	}

	return float64(years) + float64(months)/12.0
}
