package pricing

import (
	"github.com/jimmy00415/ChefWeb-sub000/internal/utils"
)

// Addon is an optional extra. PerGuest add-ons are charged per adult and
// child; the rest are flat.
type Addon struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	PerGuest bool     `json:"perGuest"`
	Aliases  []string `json:"-"`
}

// AddonCatalog resolves selected add-ons to an add-ons total.
type AddonCatalog struct {
	addons []Addon
}

// NewAddonCatalog copies addons into a read-only catalog.
func NewAddonCatalog(addons []Addon) *AddonCatalog {
	copied := make([]Addon, len(addons))
	for i, a := range addons {
		a.Aliases = append([]string(nil), a.Aliases...)
		if a.ID == "" {
			a.ID = utils.Slugify(a.Name)
		}
		copied[i] = a
	}
	return &AddonCatalog{addons: copied}
}

// DefaultAddons is the add-on menu offered at checkout.
func DefaultAddons() *AddonCatalog {
	return NewAddonCatalog([]Addon{
		{ID: "appetizer-hour", Name: "Appetizer Hour", Price: 18, PerGuest: true, Aliases: []string{"appetizers", "canapes", "hors d oeuvres"}},
		{ID: "dessert-course", Name: "Dessert Course", Price: 15, PerGuest: true, Aliases: []string{"dessert", "sweets"}},
		{ID: "wine-pairing", Name: "Wine Pairing", Price: 35, PerGuest: true, Aliases: []string{"wine", "sommelier"}},
		{ID: "tableware-rental", Name: "Tableware Rental", Price: 12, PerGuest: true, Aliases: []string{"plates", "tableware", "dinnerware"}},
		{ID: "bartender", Name: "Bartender Service", Price: 250, Aliases: []string{"bartender", "cocktails", "mixologist"}},
		{ID: "cleanup", Name: "Full Kitchen Cleanup", Price: 120, Aliases: []string{"cleanup", "clean up", "dishes"}},
	})
}

// All returns the add-ons in menu order.
func (c *AddonCatalog) All() []Addon {
	out := make([]Addon, len(c.addons))
	copy(out, c.addons)
	return out
}

// Find resolves an id, display name or alias to an add-on.
func (c *AddonCatalog) Find(term string) (Addon, bool) {
	for _, a := range c.addons {
		if a.ID == term {
			return a, true
		}
	}
	for _, a := range c.addons {
		if utils.FuzzyMatch(term, a.Name, a.Aliases) {
			return a, true
		}
	}
	return Addon{}, false
}

// Total prices the selected add-ons for the given guest count. Each add-on
// counts once however often it is selected; unknown selections are returned
// so the caller can report them.
func (c *AddonCatalog) Total(selected []string, guests float64) (float64, []string) {
	guests = ToNonNegativeNumber(guests)

	total := 0.0
	var unknown []string
	seen := make(map[string]struct{}, len(selected))
	for _, term := range selected {
		a, ok := c.Find(term)
		if !ok {
			unknown = append(unknown, term)
			continue
		}
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}

		if a.PerGuest {
			total += a.Price * guests
		} else {
			total += a.Price
		}
	}
	return total, unknown
}
