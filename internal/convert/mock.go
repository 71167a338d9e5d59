package convert

import "context"

// MockConverter is a mock implementation of Converter for testing.
type MockConverter struct {
	// Functions that can be set by tests to control behavior
	ConvertFn         func(ctx context.Context, req ConversionRequest) (float64, error)
	ConvertCurrencyFn func(ctx context.Context, req CurrencyRequest) (float64, error)

	// Call tracking
	ConvertCalls         []ConversionRequest
	ConvertCurrencyCalls []CurrencyRequest
}

// NewMockConverter creates a new mock conversion client.
func NewMockConverter() *MockConverter {
	return &MockConverter{}
}

// Convert implements Converter.Convert.
func (m *MockConverter) Convert(ctx context.Context, req ConversionRequest) (float64, error) {
	m.ConvertCalls = append(m.ConvertCalls, req)

	if m.ConvertFn != nil {
		return m.ConvertFn(ctx, req)
	}
	return 0, nil
}

// ConvertCurrency implements Converter.ConvertCurrency.
func (m *MockConverter) ConvertCurrency(ctx context.Context, req CurrencyRequest) (float64, error) {
	m.ConvertCurrencyCalls = append(m.ConvertCurrencyCalls, req)

	if m.ConvertCurrencyFn != nil {
		return m.ConvertCurrencyFn(ctx, req)
	}
	return 0, nil
}
