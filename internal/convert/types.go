package convert

import (
	"context"
	"fmt"
)

// ConversionRequest is one standard unit conversion, immutable once
// submitted. Value is transmitted as given, without client-side
// interpretation.
type ConversionRequest struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	FromUnit string `json:"from_unit"`
	ToUnit   string `json:"to_unit"`
}

// CurrencyRequest is one currency conversion.
type CurrencyRequest struct {
	Amount       string `json:"amount"`
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
}

// ServiceError means the service was reachable and reported a failure.
// Detail carries the service's error payload and may be empty when the
// response had no detail field.
type ServiceError struct {
	Detail     string
	StatusCode int
}

func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("conversion service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("conversion service returned status %d: %s", e.StatusCode, e.Detail)
}

// Converter is the boundary to the conversion service.
type Converter interface {
	Convert(ctx context.Context, req ConversionRequest) (float64, error)
	ConvertCurrency(ctx context.Context, req CurrencyRequest) (float64, error)
}
