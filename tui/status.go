package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdoutRenderer = lipgloss.NewRenderer(os.Stdout)
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	statusStyle = stdoutRenderer.NewStyle().Bold(true).Foreground(ColorCyan)
	warnStyle   = stderrRenderer.NewStyle().Bold(true).Foreground(ColorOrange)
	errorStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(ColorOrange)
	debugStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(ColorPurple)
)

// verbWidth is the column the verbs are right-aligned to.
const verbWidth = 12

func writeStatus(w io.Writer, verb string, style lipgloss.Style, format string, args ...any) {
	padded := fmt.Sprintf("%*s", verbWidth, verb)
	fmt.Fprintf(w, "%s %s\n", style.Render(padded), fmt.Sprintf(format, args...))
}

// Status prints a right-aligned bold cyan verb followed by a message to stdout.
func Status(verb string, format string, args ...any) {
	writeStatus(os.Stdout, verb, statusStyle, format, args...)
}

// Warn prints a right-aligned "warning" followed by a message to stderr.
func Warn(format string, args ...any) {
	writeStatus(os.Stderr, "warning", warnStyle, format, args...)
}

// Error prints a right-aligned bold orange "error" followed by a message to stderr.
func Error(format string, args ...any) {
	writeStatus(os.Stderr, "error", errorStyle, format, args...)
}

// Debug prints a right-aligned bold purple "debug" followed by a message to stderr.
func Debug(format string, args ...any) {
	writeStatus(os.Stderr, "debug", debugStyle, format, args...)
}
