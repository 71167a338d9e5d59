package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transmutehq/transmute/internal/convert"
)

// submitConversion issues one standard conversion request. Exactly one
// result message comes back per submit; a late response simply applies
// its outcome when it arrives (last response wins).
func (m Model) submitConversion(req convert.ConversionRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.requestTimeout())
		defer cancel()

		result, err := m.converter.Convert(ctx, req)
		return conversionResultMsg{
			request: req,
			result:  result,
			err:     err,
		}
	}
}

// submitCurrency issues one currency conversion request.
func (m Model) submitCurrency(req convert.CurrencyRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.requestTimeout())
		defer cancel()

		result, err := m.converter.ConvertCurrency(ctx, req)
		return currencyResultMsg{
			request: req,
			result:  result,
			err:     err,
		}
	}
}
