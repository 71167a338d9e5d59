package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/history"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// HistoryPanel renders the rolling conversion history.
type HistoryPanel struct {
	theme  themes.Theme
	ledger *history.Ledger
}

// NewHistoryPanel creates a panel over the given ledger.
func NewHistoryPanel(ledger *history.Ledger, theme themes.Theme) HistoryPanel {
	return HistoryPanel{ledger: ledger, theme: theme}
}

// View renders the history, most recent first.
func (p HistoryPanel) View() string {
	title := p.theme.Subtitle.Render("History")

	entries := p.ledger.Entries()
	if len(entries) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(p.theme.Muted).Render("No conversions yet."),
		)
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, p.renderEntry(entry))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

func (p HistoryPanel) renderEntry(entry history.Entry) string {
	timestamp := lipgloss.NewStyle().Foreground(p.theme.Muted).
		Render(entry.RecordedAt.Format("15:04:05"))

	icon := themes.GetCategoryIcon(entry.Category)

	conversion := fmt.Sprintf("%s %s → %s",
		entry.Value,
		catalog.FormatUnit(entry.FromUnit),
		catalog.FormatResult(entry.Result, entry.ToUnit),
	)

	return fmt.Sprintf("%s %s %s", timestamp, icon, p.theme.Normal.Render(conversion))
}
