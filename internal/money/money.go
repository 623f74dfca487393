// Package money centralises price parsing and formatting. Prices arrive from
// clients and legacy data as "£12.50", "12.5", or bare numbers; everything is
// normalised to integer pence exactly once, here.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pence is a GBP amount in minor units.
type Pence int64

// Currency is the only currency the storefront charges in.
const Currency = "gbp"

// ParsePrice converts a human-entered price string to pence. Currency symbols,
// thousands separators and surrounding whitespace are tolerated. The result is
// rounded to the nearest penny.
func ParsePrice(s string) (Pence, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '£', '$', '€', ',', ' ', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return 0, fmt.Errorf("empty price %q", s)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}

	return Pence(math.Round(value * 100)), nil
}

// FromMajor converts a major-unit amount (e.g. 12.5 pounds) to pence.
func FromMajor(v float64) Pence {
	return Pence(math.Round(v * 100))
}

// Major returns the amount in pounds.
func (p Pence) Major() float64 {
	return float64(p) / 100
}

// Int64 returns the raw minor-unit value, as Stripe expects it.
func (p Pence) Int64() int64 {
	return int64(p)
}

// Format renders the amount as "£12.50".
func (p Pence) Format() string {
	return fmt.Sprintf("£%.2f", p.Major())
}
