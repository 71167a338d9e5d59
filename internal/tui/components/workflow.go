// Package components contains the reusable pieces of the conversion TUI.
package components

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/transmutehq/transmute/internal/convert"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// Phase is the lifecycle state of one request workflow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// User-facing fallback messages. A service-reported detail takes
// precedence over ServiceFailedMessage.
const (
	ServiceFailedMessage = "Conversion failed."
	TransportMessage     = "Could not reach backend."
)

// Workflow drives a single request lifecycle: Idle, Loading, then
// Success or Error until the next submit. The standard and currency
// workflows are two instances of it with independent state.
type Workflow struct {
	theme   themes.Theme
	name    string
	result  string
	errMsg  string
	spinner spinner.Model
	phase   Phase
}

// NewWorkflow creates an idle workflow.
func NewWorkflow(name string, theme themes.Theme) Workflow {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Workflow{
		name:    name,
		theme:   theme,
		spinner: s,
		phase:   PhaseIdle,
	}
}

// Begin transitions to Loading, clearing any previous outcome, and
// returns the spinner tick command.
func (w *Workflow) Begin() tea.Cmd {
	w.phase = PhaseLoading
	w.result = ""
	w.errMsg = ""
	return w.spinner.Tick
}

// Succeed transitions to Success with the display string for the
// outcome, e.g. "3.6 kilometer".
func (w *Workflow) Succeed(display string) {
	w.phase = PhaseSuccess
	w.result = display
	w.errMsg = ""
}

// Fail transitions to Error, deriving the user-facing message from the
// error's kind.
func (w *Workflow) Fail(err error) {
	w.phase = PhaseError
	w.result = ""
	w.errMsg = ErrorMessage(err)
}

// Busy reports whether a request is in flight. The caller must not
// submit again while Busy.
func (w Workflow) Busy() bool {
	return w.phase == PhaseLoading
}

// Phase returns the current lifecycle phase.
func (w Workflow) Phase() Phase {
	return w.phase
}

// Result returns the Success display string, empty otherwise.
func (w Workflow) Result() string {
	return w.result
}

// ErrMsg returns the Error message, empty otherwise.
func (w Workflow) ErrMsg() string {
	return w.errMsg
}

// Update advances the spinner while loading.
func (w Workflow) Update(msg tea.Msg) (Workflow, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && w.phase == PhaseLoading {
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	}
	return w, nil
}

// StatusView renders the workflow's outcome line.
func (w Workflow) StatusView() string {
	switch w.phase {
	case PhaseLoading:
		return w.spinner.View() + w.theme.StatusPending.Render(" Converting...")
	case PhaseSuccess:
		return w.theme.StatusSuccess.Render("= " + w.result)
	case PhaseError:
		return w.theme.StatusError.Render(w.errMsg)
	default:
		return ""
	}
}

// ErrorMessage maps a request error to its user-facing message: a
// service-reported detail verbatim, the generic conversion fallback
// when the service reported no detail, and the transport message when
// the service was unreachable.
func ErrorMessage(err error) string {
	var svcErr *convert.ServiceError
	if errors.As(err, &svcErr) {
		if svcErr.Detail != "" {
			return svcErr.Detail
		}
		return ServiceFailedMessage
	}
	return TransportMessage
}
