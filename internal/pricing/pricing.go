// Package pricing computes booking totals from the package table, guest
// counts, add-ons and travel-fee policy. Amounts are decimal currency units;
// rounding to cents happens only at the boundary (see ToCents).
package pricing

// DefaultPackage prices any booking whose package key is unknown or missing.
const DefaultPackage = "signature"

// Package is one pricing tier.
type Package struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	AdultPrice  float64 `json:"adultPrice"`
	ChildPrice  float64 `json:"childPrice"`
	Description string  `json:"description"`
}

// packageOrder lists the table keys in display order.
var packageOrder = []string{"essential", "signature", "premium"}

var packages = map[string]Package{
	"essential": {
		Key:         "essential",
		Name:        "Essential",
		AdultPrice:  55,
		ChildPrice:  35,
		Description: "Three-course family-style dinner cooked in your kitchen.",
	},
	"signature": {
		Key:         "signature",
		Name:        "Signature",
		AdultPrice:  75,
		ChildPrice:  50,
		Description: "Four plated courses with a chef's tasting course and premium ingredients.",
	},
	"premium": {
		Key:         "premium",
		Name:        "Premium",
		AdultPrice:  110,
		ChildPrice:  65,
		Description: "Bespoke multi-course menu with wine pairing guidance.",
	},
}

// Packages returns the pricing table in display order.
func Packages() []Package {
	out := make([]Package, 0, len(packageOrder))
	for _, k := range packageOrder {
		out = append(out, packages[k])
	}
	return out
}

// LookupPackage returns the package for key, if the table has it.
func LookupPackage(key string) (Package, bool) {
	p, ok := packages[key]
	return p, ok
}

// IsValidPackage reports whether key is one of the table keys.
func IsValidPackage(key string) bool {
	_, ok := packages[key]
	return ok
}

// ResolvePackage returns the package for key, or the default package.
func ResolvePackage(key string) Package {
	if p, ok := packages[key]; ok {
		return p
	}
	return packages[DefaultPackage]
}

// Travel fee policies.
const (
	TravelFeeIncluded  = "included"
	TravelFeeEstimated = "estimated"
	TravelFeeTBD       = "tbd"
)

// IsValidTravelFeeStatus reports whether s is a known travel fee policy.
func IsValidTravelFeeStatus(s string) bool {
	switch s {
	case TravelFeeIncluded, TravelFeeEstimated, TravelFeeTBD:
		return true
	}
	return false
}

// Input is what the calculator needs from a booking.
type Input struct {
	Package         string
	Adults          float64
	Children        float64
	AddonsTotal     float64
	TravelFeeStatus string
	TravelFeeAmount float64
}

// Totals is the price breakdown of a booking.
type Totals struct {
	Base        float64 `json:"base"`
	AddonsTotal float64 `json:"addonsTotal"`
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`
}

// CalculateTotals prices a booking. Negative or non-finite numbers count as
// zero. Add-on identities are not checked here; AddonsTotal is trusted.
//
// Travel fee: "included" adds nothing, "tbd" defers the fee so total equals
// subtotal, and any other status adds TravelFeeAmount.
func CalculateTotals(in Input) Totals {
	pkg := ResolvePackage(in.Package)

	adults := ToNonNegativeNumber(in.Adults)
	children := ToNonNegativeNumber(in.Children)
	addons := ToNonNegativeNumber(in.AddonsTotal)

	base := adults*pkg.AdultPrice + children*pkg.ChildPrice
	subtotal := base + addons

	total := subtotal
	switch in.TravelFeeStatus {
	case TravelFeeIncluded, TravelFeeTBD:
	default:
		total += ToNonNegativeNumber(in.TravelFeeAmount)
	}

	return Totals{
		Base:        base,
		AddonsTotal: addons,
		Subtotal:    subtotal,
		Total:       total,
	}
}
