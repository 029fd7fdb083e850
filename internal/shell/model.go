// Package shell is the host read-loop around a cline.Dispatcher: a Bubble
// Tea program that completes on Tab and dispatches on Enter. The core
// library knows nothing about any of this.
package shell

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cline-tools/cline"
	"github.com/cline-tools/cline/internal/log"
	"github.com/cline-tools/cline/internal/shell/style"
)

const maxTranscript = 500

// Model is the Bubble Tea model for the interactive shell.
type Model struct {
	dispatcher *cline.Dispatcher
	out        *bytes.Buffer

	prompt     string
	input      string
	transcript []string

	suggestions []string
	selected    int

	keys  keyMap
	width int
}

// NewModel builds a shell over the given dispatcher. out must be the writer
// the dispatcher's callbacks print to.
func NewModel(dispatcher *cline.Dispatcher, out *bytes.Buffer, prompt string) Model {
	return Model{
		dispatcher: dispatcher,
		out:        out,
		prompt:     prompt,
		keys:       defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Complete):
		return m.completeKey(), nil

	case key.Matches(msg, m.keys.Submit):
		if len(m.suggestions) > 0 {
			m = m.applySuggestion()
			return m, nil
		}
		return m.submit(), nil

	case key.Matches(msg, m.keys.Dismiss):
		m.suggestions = nil
		m.selected = 0
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	default:
		return m, nil
	}

	// Any edit invalidates the open suggestion popup.
	m.suggestions = nil
	m.selected = 0
	return m, nil
}

// completeKey asks the dispatcher for suggestions on the first Tab and
// cycles through them on the following ones. A lone candidate is applied
// immediately.
func (m Model) completeKey() Model {
	if len(m.suggestions) > 0 {
		m.selected = (m.selected + 1) % len(m.suggestions)
		return m
	}

	m.suggestions = m.dispatcher.Complete(m.input)
	m.selected = 0
	if len(m.suggestions) == 1 {
		m = m.applySuggestion()
	}
	return m
}

// applySuggestion replaces the partial last word of the input with the
// selected suggestion and closes the popup.
func (m Model) applySuggestion() Model {
	if m.selected >= len(m.suggestions) {
		return m
	}
	chosen := m.suggestions[m.selected]

	if m.input == "" || strings.HasSuffix(m.input, " ") {
		m.input += chosen + " "
	} else {
		fields := strings.Fields(m.input)
		fields[len(fields)-1] = chosen
		m.input = strings.Join(fields, " ") + " "
	}

	m.suggestions = nil
	m.selected = 0
	return m
}

// submit executes the current line and records the outcome in the transcript.
func (m Model) submit() Model {
	line := m.input
	m.input = ""
	m.suggestions = nil
	m.selected = 0

	if strings.TrimSpace(line) == "" {
		m.appendTranscript(m.prompt)
		return m
	}

	m.appendTranscript(m.prompt + line)

	m.out.Reset()
	err := m.dispatcher.Exec(line)
	for _, outLine := range splitOutput(m.out.String()) {
		m.appendTranscript(outLine)
	}
	if err != nil {
		log.Info("shell: %q failed: %v", line, err)
		m.appendTranscript(style.Error(err.Error()))
	}
	return m
}

func (m *Model) appendTranscript(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

func splitOutput(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(style.Prompt(m.prompt))
	b.WriteString(m.input)
	b.WriteByte('\n')

	if len(m.suggestions) > 0 {
		parts := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			if i == m.selected {
				parts[i] = style.Selected(s)
			} else {
				parts[i] = style.Suggestion(s)
			}
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteByte('\n')
		b.WriteString(style.Muted("tab: next  enter: accept  esc: dismiss"))
		b.WriteByte('\n')
	}

	return b.String()
}

// Run starts the interactive program.
func Run(dispatcher *cline.Dispatcher, out *bytes.Buffer, prompt string) error {
	p := tea.NewProgram(NewModel(dispatcher, out, prompt))
	_, err := p.Run()
	return err
}
