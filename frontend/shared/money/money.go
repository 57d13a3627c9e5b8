package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Prices travel as integer cents. Parsing and formatting are the only
// places where the euro decimal form exists.

var pricePattern = regexp.MustCompile(`^\d*\.?\d+$`)

var ErrInvalidPrice = errors.New("Bitte gib einen gültigen Preis ein!")

// ParsePrice converts a decimal euro amount like "12.5" into cents. At most
// two decimal places are allowed.
func ParsePrice(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if !pricePattern.MatchString(raw) {
		return 0, ErrInvalidPrice
	}

	whole, frac, _ := strings.Cut(raw, ".")
	if len(frac) > 2 || len(whole) > 12 {
		return 0, ErrInvalidPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, r := range whole + frac {
		cents = cents*10 + int64(r-'0')
	}
	return cents, nil
}

// FormatPrice renders cents as a two-decimal euro amount, "1250" -> "12.50".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
