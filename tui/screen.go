package tui

import tea "github.com/charmbracelet/bubbletea"

// FooterKey describes a single keybinding hint shown in the footer.
type FooterKey struct {
	Key  string // display text for the key, e.g. "o"
	Desc string // description, e.g. "outline"
}

// Screen is implemented by each TUI screen (carousel, outline, etc.).
type Screen interface {
	// Update handles input and custom messages. Returning a different Screen
	// switches the active screen. The Window pointer provides access to shared
	// state (dimensions, flash, error).
	Update(msg tea.Msg, w *Window) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(w *Window) string

	// FooterKeys returns context-sensitive keybinding hints for the right
	// side of the footer. These are prepended before the base keys.
	FooterKeys(w *Window) []FooterKey

	// FooterStatus returns an optional left-side indicator for the footer.
	// Return "" for no indicator.
	FooterStatus(w *Window) string
}

// Closer is implemented by screens that hold resources which must be
// released when the program quits.
type Closer interface {
	Close()
}

func closeScreen(s Screen) {
	if c, ok := s.(Closer); ok {
		c.Close()
	}
}

// Quit closes s and returns the command that ends the program.
func Quit(s Screen) tea.Cmd {
	closeScreen(s)
	return tea.Quit
}
