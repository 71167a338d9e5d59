package server

// currencyRates holds units of each currency per US dollar. Static
// reference rates; the reference service makes no claim to live data.
var currencyRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 156.2,
	"CHF": 0.88,
	"CAD": 1.36,
	"AUD": 1.52,
	"INR": 83.1,
	"CNY": 7.24,
}
