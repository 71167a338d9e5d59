package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("transmute"),
		m.renderStandardPanel(),
		m.renderCurrencyPanel(),
		m.theme.Box.Render(m.historyPanel.View()),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStandardPanel renders the unit conversion workflow.
func (m Model) renderStandardPanel() string {
	category := m.categories[m.categoryIndex]
	icon := themes.GetCategoryIcon(category)

	rows := []string{
		m.renderSelector("Category", icon+" "+category, m.focus == fieldCategory),
		m.renderInput("Value", m.valueInput.View(), m.focus == fieldValue),
		m.renderSelector("From", catalog.UnitLabel(m.units[m.fromIndex]), m.focus == fieldFromUnit),
		m.renderSelector("To", catalog.UnitLabel(m.units[m.toIndex]), m.focus == fieldToUnit),
	}
	if status := m.standard.StatusView(); status != "" {
		rows = append(rows, "", status)
	}

	box := m.theme.BorderedBox
	if !m.focus.inCurrencyPanel() {
		box = m.theme.FocusedBox
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderCurrencyPanel renders the currency workflow, or a hint while
// the panel is disabled. A disabled panel hides its outcome without
// clearing it.
func (m Model) renderCurrencyPanel() string {
	if !m.currencyEnabled {
		hint := lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("💱 Currency conversion off — Ctrl+T to enable")
		return m.theme.Box.Render(hint)
	}

	rows := []string{
		m.theme.Subtitle.Render("Currency"),
		m.renderInput("Amount", m.amountInput.View(), m.focus == fieldAmount),
		m.renderSelector("From", m.currencies[m.fromCurrencyIndex], m.focus == fieldFromCurrency),
		m.renderSelector("To", m.currencies[m.toCurrencyIndex], m.focus == fieldToCurrency),
	}
	if status := m.currency.StatusView(); status != "" {
		rows = append(rows, "", status)
	}

	box := m.theme.BorderedBox
	if m.focus.inCurrencyPanel() {
		box = m.theme.FocusedBox
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderSelector renders a label and the selected option with cycle
// arrows when focused.
func (m Model) renderSelector(label, value string, focused bool) string {
	display := " " + value + " "
	if focused {
		display = m.theme.Selected.Render("◀" + display + "▶")
	} else {
		display = m.theme.Normal.Render(display)
	}

	return m.theme.FieldLabel.Render(label) + display
}

// renderInput renders a label and a text input view.
func (m Model) renderInput(label, inputView string, focused bool) string {
	rendered := m.theme.FieldLabel.Render(label) + inputView
	if focused {
		return rendered + m.theme.Subtitle.Render("  (numeric)")
	}
	return rendered
}

// renderHelp renders the keyboard hints footer.
func (m Model) renderHelp() string {
	hints := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, binding := range m.keymap.ShortHelp() {
		hints = append(hints, renderHint(binding))
	}

	return lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(strings.Join(hints, "  "))
}

func renderHint(binding key.Binding) string {
	help := binding.Help()
	return fmt.Sprintf("[%s] %s", help.Key, help.Desc)
}
