package server

import (
	"fmt"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/common"
)

// unitFactors maps each linear category's units to their factor
// relative to the category's base unit (the first catalog entry).
var unitFactors = map[string]map[string]float64{
	"Length": {
		"meter":      1,
		"kilometer":  1000,
		"centimeter": 0.01,
		"millimeter": 0.001,
		"mile":       1609.344,
		"yard":       0.9144,
		"foot":       0.3048,
		"inch":       0.0254,
	},
	"Weight": {
		"gram":      1,
		"kilogram":  1000,
		"milligram": 0.001,
		"pound":     453.59237,
		"ounce":     28.349523125,
	},
	"Speed": {
		"meter_per_second":   1,
		"kilometer_per_hour": 1.0 / 3.6,
		"mile_per_hour":      0.44704,
		"knot":               0.514444,
	},
}

// convertUnits converts value between two units of one category.
// Temperature is affine, everything else is a linear factor table.
func convertUnits(category string, value float64, fromUnit, toUnit string) (float64, error) {
	if category == "Temperature" {
		return convertTemperature(value, fromUnit, toUnit)
	}

	factors, ok := unitFactors[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownCategory, category)
	}

	fromFactor, ok := factors[fromUnit]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, fromUnit)
	}
	toFactor, ok := factors[toUnit]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, toUnit)
	}

	return value * fromFactor / toFactor, nil
}

// convertTemperature converts through celsius.
func convertTemperature(value float64, fromUnit, toUnit string) (float64, error) {
	var celsius float64
	switch fromUnit {
	case "celsius":
		celsius = value
	case "fahrenheit":
		celsius = (value - 32) * 5 / 9
	case "kelvin":
		celsius = value - 273.15
	default:
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, fromUnit)
	}

	switch toUnit {
	case "celsius":
		return celsius, nil
	case "fahrenheit":
		return celsius*9/5 + 32, nil
	case "kelvin":
		return celsius + 273.15, nil
	default:
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, toUnit)
	}
}

// convertCurrency converts an amount through the USD-based rate table.
func convertCurrency(amount float64, fromCurrency, toCurrency string) (float64, error) {
	fromRate, ok := currencyRates[fromCurrency]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, fromCurrency)
	}
	toRate, ok := currencyRates[toCurrency]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownUnit, toCurrency)
	}

	return amount / fromRate * toRate, nil
}

// supportedCategory reports whether the category is convertible.
func supportedCategory(category string) bool {
	if category == "Temperature" {
		return true
	}
	_, ok := unitFactors[category]
	return ok && category != catalog.CurrencyCategory
}
