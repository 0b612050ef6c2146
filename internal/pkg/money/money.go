// internal/pkg/money/money.go

// Package money parses and formats peso amounts held as fixed-point decimals.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefixes every formatted amount.
const Symbol = "₱"

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]+`)
	numericPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// Parse extracts the amount from display text such as "₱1,500.00". The
// second return value is false when no number could be read.
func Parse(text string) (decimal.Decimal, bool) {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	prefix := numericPrefix.FindString(cleaned)
	if prefix == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(prefix, "."))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero is Parse for prices, where unreadable text counts as zero.
func ParseOrZero(text string) decimal.Decimal {
	d, _ := Parse(text)
	return d
}

// Format renders d as "₱ 1,500.00".
func Format(d decimal.Decimal) string {
	return Symbol + " " + Group(d)
}

// Group renders d with two decimals and comma thousands separators.
func Group(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}

// Cents rounds d half away from zero to two decimals.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
