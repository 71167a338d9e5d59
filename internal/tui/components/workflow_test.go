package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transmutehq/transmute/internal/convert"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

func TestNewWorkflowStartsIdle(t *testing.T) {
	w := NewWorkflow("standard", themes.Default)

	assert.Equal(t, PhaseIdle, w.Phase())
	assert.False(t, w.Busy())
	assert.Empty(t, w.Result())
	assert.Empty(t, w.ErrMsg())
	assert.Empty(t, w.StatusView())
}

func TestBeginClearsPreviousOutcome(t *testing.T) {
	w := NewWorkflow("standard", themes.Default)

	w.Succeed("3.6 kilometer")
	require.Equal(t, PhaseSuccess, w.Phase())

	cmd := w.Begin()
	assert.NotNil(t, cmd)
	assert.Equal(t, PhaseLoading, w.Phase())
	assert.True(t, w.Busy())
	assert.Empty(t, w.Result())
	assert.Empty(t, w.ErrMsg())
}

func TestBeginClearsPreviousError(t *testing.T) {
	w := NewWorkflow("standard", themes.Default)

	w.Fail(&convert.ServiceError{Detail: "bad unit", StatusCode: 400})
	require.Equal(t, PhaseError, w.Phase())

	w.Begin()
	assert.Empty(t, w.ErrMsg())
}

func TestSucceedKeepsDisplayPairing(t *testing.T) {
	w := NewWorkflow("standard", themes.Default)
	w.Begin()

	w.Succeed("3.6 kilometer")

	assert.Equal(t, PhaseSuccess, w.Phase())
	assert.False(t, w.Busy())
	assert.Equal(t, "3.6 kilometer", w.Result())
	assert.Contains(t, w.StatusView(), "3.6 kilometer")
}

func TestFailMapsErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{
			name: "service error with detail",
			err:  &convert.ServiceError{Detail: "bad unit", StatusCode: 400},
			want: "bad unit",
		},
		{
			name: "service error without detail",
			err:  &convert.ServiceError{StatusCode: 500},
			want: ServiceFailedMessage,
		},
		{
			name: "transport error",
			err:  errors.New("dial tcp: connection refused"),
			want: TransportMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorkflow("standard", themes.Default)
			w.Begin()

			w.Fail(tt.err)

			assert.Equal(t, PhaseError, w.Phase())
			assert.Equal(t, tt.want, w.ErrMsg())
			assert.Empty(t, w.Result())
		})
	}
}

func TestErrorMessageUnwrapsWrappedServiceError(t *testing.T) {
	wrapped := errors.Join(errors.New("request failed"), &convert.ServiceError{Detail: "bad unit"})

	assert.Equal(t, "bad unit", ErrorMessage(wrapped))
}

func TestWorkflowsAreIndependent(t *testing.T) {
	standard := NewWorkflow("standard", themes.Default)
	currency := NewWorkflow("currency", themes.Default)

	standard.Begin()
	standard.Fail(&convert.ServiceError{Detail: "bad unit"})
	currency.Begin()
	currency.Succeed("92.5 EUR")

	assert.Equal(t, PhaseError, standard.Phase())
	assert.Equal(t, "bad unit", standard.ErrMsg())
	assert.Equal(t, PhaseSuccess, currency.Phase())
	assert.Equal(t, "92.5 EUR", currency.Result())
}
