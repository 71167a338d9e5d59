package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/transmutehq/transmute/internal/history"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

func TestHistoryPanelEmptyState(t *testing.T) {
	panel := NewHistoryPanel(history.NewLedger(), themes.Default)

	view := panel.View()
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "No conversions yet.")
}

func TestHistoryPanelRendersEntries(t *testing.T) {
	ledger := history.NewLedger()
	ledger.Record(history.Entry{
		Category:   "Length",
		Value:      "3600",
		FromUnit:   "meter",
		ToUnit:     "kilometer",
		Result:     3.6,
		RecordedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	})
	panel := NewHistoryPanel(ledger, themes.Default)

	view := panel.View()
	assert.Contains(t, view, "09:30:00")
	assert.Contains(t, view, "3600 meter")
	assert.Contains(t, view, "3.6 kilometer")
	assert.NotContains(t, view, "No conversions yet.")
}

func TestHistoryPanelFormatsUnderscoredUnits(t *testing.T) {
	ledger := history.NewLedger()
	ledger.Record(history.Entry{
		Category:   "Speed",
		Value:      "10",
		FromUnit:   "meter_per_second",
		ToUnit:     "kilometer_per_hour",
		Result:     36,
		RecordedAt: time.Now(),
	})
	panel := NewHistoryPanel(ledger, themes.Default)

	view := panel.View()
	assert.Contains(t, view, "meter per second")
	assert.Contains(t, view, "36 kilometer per hour")
}
