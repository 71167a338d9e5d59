// Package catalog holds the static category and unit configuration the
// conversion workflows select from.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CurrencyCategory is the distinguished category whose units are
// currency codes handled by the currency workflow.
const CurrencyCategory = "Currency"

// Selection is the unit pair derived for a category.
type Selection struct {
	Category string
	FromUnit string
	ToUnit   string
}

// Catalog maps each category to its ordered unit list. It is read-only
// configuration; nothing in the application mutates it after creation.
type Catalog struct {
	units      map[string][]string
	categories []string
}

// New builds a catalog from an ordered list of categories and their
// unit lists. Every category must carry at least one unit.
func New(categories []string, units map[string][]string) (Catalog, error) {
	for _, category := range categories {
		if len(units[category]) == 0 {
			return Catalog{}, fmt.Errorf("category %q has no units", category)
		}
	}
	return Catalog{categories: categories, units: units}, nil
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := New(
		[]string{"Length", "Weight", "Temperature", "Speed", CurrencyCategory},
		map[string][]string{
			"Length":         {"meter", "kilometer", "centimeter", "millimeter", "mile", "yard", "foot", "inch"},
			"Weight":         {"gram", "kilogram", "milligram", "pound", "ounce"},
			"Temperature":    {"celsius", "fahrenheit", "kelvin"},
			"Speed":          {"meter_per_second", "kilometer_per_hour", "mile_per_hour", "knot"},
			CurrencyCategory: {"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "INR", "CNY"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the ordered category names, excluding the
// currency category, which is driven by its own workflow.
func (c Catalog) Categories() []string {
	categories := make([]string, 0, len(c.categories))
	for _, category := range c.categories {
		if category == CurrencyCategory {
			continue
		}
		categories = append(categories, category)
	}
	return categories
}

// Units returns the ordered unit list for a category.
func (c Catalog) Units(category string) []string {
	units, ok := c.units[category]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown category %q", category))
	}
	return units
}

// Currencies returns the ordered currency codes.
func (c Catalog) Currencies() []string {
	return c.Units(CurrencyCategory)
}

// Has reports whether the category exists in the catalog.
func (c Catalog) Has(category string) bool {
	_, ok := c.units[category]
	return ok
}

// Resolve derives the default unit pair for a category: the first unit
// and, when the category has more than one, the second. Callers must
// only pass known categories; an unknown one panics.
func (c Catalog) Resolve(category string) Selection {
	units := c.Units(category)

	selection := Selection{
		Category: category,
		FromUnit: units[0],
		ToUnit:   units[0],
	}
	if len(units) > 1 {
		selection.ToUnit = units[1]
	}
	return selection
}

// FormatUnit renders a unit identifier for display, turning
// underscores into spaces. Applying it twice equals applying it once.
func FormatUnit(unit string) string {
	return strings.ReplaceAll(unit, "_", " ")
}

// UnitLabel renders a unit identifier as a selector label: underscores
// become spaces and each word is capitalized. Idempotent.
func UnitLabel(unit string) string {
	words := strings.Fields(FormatUnit(unit))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// FormatResult pairs a numeric result with its target unit for
// display, e.g. FormatResult(3.6, "kilometer") == "3.6 kilometer".
func FormatResult(result float64, unit string) string {
	return strconv.FormatFloat(result, 'f', -1, 64) + " " + FormatUnit(unit)
}
