package shell

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/cline-tools/cline/internal/testutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	store := testutil.NewTestStore(t)
	out := &bytes.Buffer{}
	d, err := BuildDispatcher(store, out, false)
	require.NoError(t, err)

	return NewModel(d, out, ">> ")
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		if r == ' ' {
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_TypingEditsInput(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "task")
	require.Equal(t, "task", m.input)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "tas", m.input)
}

func TestModel_TabAppliesLoneSuggestion(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "ta")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, "task ", m.input)
	require.Empty(t, m.suggestions)
}

func TestModel_TabOpensAndCyclesPopup(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "task ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, []string{"add", "done", "list"}, m.suggestions)
	require.Equal(t, 0, m.selected)
	require.Contains(t, m.View(), "add")
	require.Contains(t, m.View(), "list")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.selected)

	// Enter accepts the highlighted candidate instead of executing.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "task done ", m.input)
	require.Empty(t, m.suggestions)
}

func TestModel_EscDismissesPopup(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "task ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotEmpty(t, m.suggestions)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, m.suggestions)
	require.Equal(t, "task ", m.input)
}

func TestModel_EditingClosesPopup(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "task ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotEmpty(t, m.suggestions)

	m = typeString(t, m, "l")
	require.Empty(t, m.suggestions)
	require.Equal(t, "task l", m.input)
}

func TestModel_SubmitRunsCommand(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "echo hello there")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Empty(t, m.input)
	require.Contains(t, m.View(), ">> echo hello there")
	require.Contains(t, m.View(), "hello there")
}

func TestModel_SubmitUnknownCommandShowsError(t *testing.T) {
	m := newTestModel(t)

	m = typeString(t, m, "frobnicate")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Contains(t, m.View(), "'frobnicate' is not a registered command")
}

func TestModel_SubmitEmptyLineJustEchoesPrompt(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{">> "}, m.transcript)
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}
