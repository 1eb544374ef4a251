package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	nonPriceChars  = regexp.MustCompile(`[^0-9.,]`)
	leadingDecimal = regexp.MustCompile(`^(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)`)
	availabilityRe = regexp.MustCompile(`([0-9]+(?:[.,][0-9]+)?)(\s*k)?`)
	ratingRe       = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)
)

// ParsePrice converts scraped price text into a non-negative amount.
// Both "1.234,56" and "1,234.56" read as 1234.56: when both separators occur
// the rightmost one is the decimal mark. A lone comma is a decimal mark.
// Returns 0 when nothing parses.
func ParsePrice(text string) float64 {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	numeric := nonPriceChars.ReplaceAllString(compact, "")
	if numeric == "" {
		return 0
	}

	lastComma := strings.LastIndex(numeric, ",")
	lastDot := strings.LastIndex(numeric, ".")
	switch {
	case lastComma > lastDot:
		numeric = strings.ReplaceAll(numeric, ".", "")
		numeric = strings.Replace(numeric, ",", ".", 1)
	case lastDot > lastComma:
		numeric = strings.ReplaceAll(numeric, ",", "")
	}

	match := leadingDecimal.FindString(numeric)
	if match == "" {
		return 0
	}

	d, err := decimal.NewFromString(match)
	if err != nil {
		return 0
	}
	return finiteOrZero(d.InexactFloat64())
}

// ParseAvailability extracts a unit count such as "150 uds" or "2.3k sold".
// A trailing k multiplies by 1000. The result is rounded to the nearest integer.
func ParseAvailability(text string) int {
	m := availabilityRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0
	}

	amount, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	if m[2] != "" {
		amount *= 1000
	}

	amount = math.Round(finiteOrZero(amount))
	if amount > math.MaxInt32 {
		return 0
	}
	return int(amount)
}

// ParseRating reads the first decimal number out of rating text ("4,5/5" is 4.5).
// Out-of-range values are returned as-is.
func ParseRating(text string) float64 {
	m := ratingRe.FindStringSubmatch(strings.Replace(text, ",", ".", 1))
	if m == nil {
		return 0
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
