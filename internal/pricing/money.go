package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// ToCents converts a decimal amount to whole cents, rounding half away from
// zero. Every persistence and payment boundary goes through here so that
// the same amount always maps to the same cents. Amounts beyond int64 cents
// saturate at math.MaxInt64.
func ToCents(amount float64) int64 {
	cents := decimal.NewFromFloat(ToNonNegativeNumber(amount)).Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) {
		return math.MaxInt64
	}
	return cents.IntPart()
}

// FromCents converts cents back to decimal units.
func FromCents(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(hundred).Float64()
	return f
}

// FormatUSD renders an amount as "$1,234.50".
func FormatUSD(amount float64) string {
	fixed := decimal.NewFromFloat(ToNonNegativeNumber(amount)).StringFixed(2)

	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]
	var grouped []byte
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}
	return "$" + string(grouped) + frac
}
