// Package tui implements the interactive conversion interface: two
// independent request workflows over a shared catalog, plus a rolling
// history of completed conversions.
package tui

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/convert"
	"github.com/transmutehq/transmute/internal/history"
	"github.com/transmutehq/transmute/internal/tui/components"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// field identifies the focusable inputs, in tab order. The currency
// fields come last so they can be skipped while the panel is disabled.
type field int

const (
	fieldCategory field = iota
	fieldValue
	fieldFromUnit
	fieldToUnit
	fieldAmount
	fieldFromCurrency
	fieldToCurrency
	fieldCount
)

func (f field) inCurrencyPanel() bool {
	return f >= fieldAmount
}

// Model holds the TUI state.
type Model struct {
	converter    convert.Converter
	ledger       *history.Ledger
	catalog      catalog.Catalog
	theme        themes.Theme
	keymap       KeyMap
	config       Config
	historyPanel components.HistoryPanel

	categories    []string
	categoryIndex int
	units         []string
	fromIndex     int
	toIndex       int
	valueInput    textinput.Model

	currencies        []string
	fromCurrencyIndex int
	toCurrencyIndex   int
	amountInput       textinput.Model
	currencyEnabled   bool

	standard components.Workflow
	currency components.Workflow

	focus    field
	width    int
	height   int
	quitting bool
}

// newModel creates a model from the given configuration.
func newModel(cfg Config) Model {
	valueInput := textinput.New()
	valueInput.Placeholder = "Value to convert..."
	valueInput.CharLimit = 32

	amountInput := textinput.New()
	amountInput.Placeholder = "Amount..."
	amountInput.CharLimit = 32

	m := Model{
		converter:       cfg.Converter,
		ledger:          cfg.Ledger,
		catalog:         cfg.Catalog,
		theme:           cfg.Theme,
		keymap:          DefaultKeyMap(),
		config:          cfg,
		historyPanel:    components.NewHistoryPanel(cfg.Ledger, cfg.Theme),
		categories:      cfg.Catalog.Categories(),
		currencies:      cfg.Catalog.Currencies(),
		valueInput:      valueInput,
		amountInput:     amountInput,
		currencyEnabled: cfg.CurrencyEnabled,
		standard:        components.NewWorkflow("standard", cfg.Theme),
		currency:        components.NewWorkflow("currency", cfg.Theme),
		focus:           fieldCategory,
	}
	m.resetSelection()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case conversionResultMsg:
		if msg.err != nil {
			m.standard.Fail(msg.err)
			return m, nil
		}
		m.standard.Succeed(catalog.FormatResult(msg.result, msg.request.ToUnit))
		m.recordSuccess(msg)
		return m, nil

	case currencyResultMsg:
		if msg.err != nil {
			m.currency.Fail(msg.err)
			return m, nil
		}
		m.currency.Succeed(catalog.FormatResult(msg.result, msg.request.ToCurrency))
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.standard, cmd = m.standard.Update(msg)
		cmds = append(cmds, cmd)
		m.currency, cmd = m.currency.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleKey routes key presses by focus and binding.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.ToggleCurrency):
		m.toggleCurrency()
		return m, m.syncInputFocus()

	case key.Matches(msg, m.keymap.NextField):
		m.moveFocus(1)
		return m, m.syncInputFocus()

	case key.Matches(msg, m.keymap.PrevField):
		m.moveFocus(-1)
		return m, m.syncInputFocus()

	case key.Matches(msg, m.keymap.Submit):
		return m, m.submitFocused()
	}

	// Text inputs consume everything else while focused, including
	// left/right cursor movement.
	switch m.focus {
	case fieldValue:
		var cmd tea.Cmd
		m.valueInput, cmd = m.valueInput.Update(msg)
		return m, cmd
	case fieldAmount:
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.NextOption):
		m.cycleOption(1)
	case key.Matches(msg, m.keymap.PrevOption):
		m.cycleOption(-1)
	}

	return m, nil
}

// resetSelection re-derives the unit pair for the current category,
// discarding any manual selection. Switching categories always lands
// back on the resolver's defaults.
func (m *Model) resetSelection() {
	category := m.categories[m.categoryIndex]
	selection := m.catalog.Resolve(category)

	m.units = m.catalog.Units(category)
	m.fromIndex = slices.Index(m.units, selection.FromUnit)
	m.toIndex = slices.Index(m.units, selection.ToUnit)
}

// moveFocus advances focus, skipping the currency fields while the
// panel is disabled.
func (m *Model) moveFocus(delta int) {
	for {
		m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
		if m.currencyEnabled || !m.focus.inCurrencyPanel() {
			return
		}
	}
}

// syncInputFocus keeps the text inputs' focus in step with the field
// cursor.
func (m *Model) syncInputFocus() tea.Cmd {
	m.valueInput.Blur()
	m.amountInput.Blur()

	switch m.focus {
	case fieldValue:
		m.valueInput.Focus()
		return textinput.Blink
	case fieldAmount:
		m.amountInput.Focus()
		return textinput.Blink
	}
	return nil
}

// toggleCurrency flips the currency panel. Disabling hides the panel
// but deliberately leaves its last outcome intact.
func (m *Model) toggleCurrency() {
	m.currencyEnabled = !m.currencyEnabled
	if !m.currencyEnabled && m.focus.inCurrencyPanel() {
		m.focus = fieldCategory
	}
}

// cycleOption steps the focused selector through its options.
func (m *Model) cycleOption(delta int) {
	switch m.focus {
	case fieldCategory:
		m.categoryIndex = wrapIndex(m.categoryIndex+delta, len(m.categories))
		m.resetSelection()
	case fieldFromUnit:
		m.fromIndex = wrapIndex(m.fromIndex+delta, len(m.units))
	case fieldToUnit:
		m.toIndex = wrapIndex(m.toIndex+delta, len(m.units))
	case fieldFromCurrency:
		m.fromCurrencyIndex = wrapIndex(m.fromCurrencyIndex+delta, len(m.currencies))
	case fieldToCurrency:
		m.toCurrencyIndex = wrapIndex(m.toCurrencyIndex+delta, len(m.currencies))
	}
}

// submitFocused submits the workflow owning the focused field.
func (m *Model) submitFocused() tea.Cmd {
	if m.focus.inCurrencyPanel() {
		return m.submitCurrencyWorkflow()
	}
	return m.submitStandardWorkflow()
}

// submitStandardWorkflow starts a standard conversion. The submit
// affordance stays disabled while a request is in flight or the value
// is not numeric; nothing invalid reaches the workflow.
func (m *Model) submitStandardWorkflow() tea.Cmd {
	value := strings.TrimSpace(m.valueInput.Value())
	if m.standard.Busy() || !isNumeric(value) {
		return nil
	}

	req := convert.ConversionRequest{
		Category: m.categories[m.categoryIndex],
		Value:    value,
		FromUnit: m.units[m.fromIndex],
		ToUnit:   m.units[m.toIndex],
	}

	return tea.Batch(m.standard.Begin(), m.submitConversion(req))
}

// submitCurrencyWorkflow starts a currency conversion, gated on the
// panel being enabled.
func (m *Model) submitCurrencyWorkflow() tea.Cmd {
	amount := strings.TrimSpace(m.amountInput.Value())
	if !m.currencyEnabled || m.currency.Busy() || !isNumeric(amount) {
		return nil
	}

	req := convert.CurrencyRequest{
		Amount:       amount,
		FromCurrency: m.currencies[m.fromCurrencyIndex],
		ToCurrency:   m.currencies[m.toCurrencyIndex],
	}

	return tea.Batch(m.currency.Begin(), m.submitCurrency(req))
}

// recordSuccess appends a completed standard conversion to the
// ledger. Currency conversions never reach here.
func (m *Model) recordSuccess(msg conversionResultMsg) {
	m.ledger.Record(history.Entry{
		Category:   msg.request.Category,
		Value:      msg.request.Value,
		FromUnit:   msg.request.FromUnit,
		ToUnit:     msg.request.ToUnit,
		Result:     msg.result,
		RecordedAt: time.Now(),
	})
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func wrapIndex(i, length int) int {
	return ((i % length) + length) % length
}
