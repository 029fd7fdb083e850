// Package style provides semantic terminal styling for the demo shell using
// lipgloss. All styling is semantic (Prompt, Error, Muted) rather than
// visual. When disabled, every helper returns its input unchanged with no
// ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	promptStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	mutedStyle      lipgloss.Style
	suggestionStyle lipgloss.Style
	selectedStyle   lipgloss.Style
)

// Init sets up the package. It respects the NO_COLOR convention: when the
// variable is set to any non-empty value, styling stays off regardless of
// enable. Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	lipgloss.SetColorProfile(termenv.ColorProfile())

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4"))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Prompt styles the shell prompt.
func Prompt(text string) string { return render(promptStyle, text) }

// Error styles an error line.
func Error(text string) string { return render(errorStyle, text) }

// Muted styles secondary output.
func Muted(text string) string { return render(mutedStyle, text) }

// Suggestion styles a completion candidate.
func Suggestion(text string) string { return render(suggestionStyle, text) }

// Selected styles the highlighted completion candidate.
func Selected(text string) string { return render(selectedStyle, text) }
