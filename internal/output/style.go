package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ConfigureColor drops to plain output when color is disabled by the
// environment or when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	if noColor || termenv.EnvNoColor() || !IsTTY(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header renders section headings in help output.
func Header(s string) string {
	return headerStyle.Render(s)
}

// CommandName renders a subcommand name in listings.
func CommandName(s string) string {
	return commandStyle.Render(s)
}

// Dim renders de-emphasized text, used for debug traces.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Errorf renders error text for stderr diagnostics.
func Errorf(s string) string {
	return errorStyle.Render(s)
}
