package tui

import "github.com/transmutehq/transmute/internal/convert"

// Request completion messages. Each workflow has its own message type
// so an outcome can never land on the other workflow's state.
type conversionResultMsg struct {
	err     error
	request convert.ConversionRequest
	result  float64
}

type currencyResultMsg struct {
	err     error
	request convert.CurrencyRequest
	result  float64
}
