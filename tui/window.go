package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const flashTTL = 2 * time.Second

// flashExpiredMsg clears the flash once its deadline has passed. A flash set
// again in the meantime pushes the deadline out and the check is rescheduled.
type flashExpiredMsg struct{}

// Window is the top-level tea.Model. It owns the shared frame (header,
// footer, sizing, flash/error) and delegates content to the active Screen.
type Window struct {
	header    *HeaderInfo
	screen    Screen
	width     int
	height    int
	vpHeight  int
	flash     string
	flashExp  time.Time
	flashWait bool // a flashExpiredMsg is scheduled
	err       error
}

func NewWindow(header *HeaderInfo, screen Screen) *Window {
	return &Window{
		header: header,
		screen: screen,
	}
}

// Accessors for screens to read shared state.
func (w *Window) Width() int     { return w.width }
func (w *Window) Height() int    { return w.height }
func (w *Window) VpHeight() int  { return w.vpHeight }
func (w *Window) Flash() string  { return w.flash }
func (w *Window) Err() error     { return w.err }
func (w *Window) Screen() Screen { return w.screen }

// ContentTop returns the terminal row where the screen's content starts.
func (w *Window) ContentTop() int { return w.headerHeight() }

// Mutators for screens to update shared state.
func (w *Window) SetFlash(msg string) {
	w.flash = msg
	w.flashExp = time.Now().Add(flashTTL)
}
func (w *Window) SetHeader(info *HeaderInfo) {
	w.header = info
	w.resize()
}
func (w *Window) SetError(err error) { w.err = err }
func (w *Window) ClearError()        { w.err = nil }

func (w *Window) headerHeight() int {
	h := RenderHeader(w.header, w.width, w.height)
	return strings.Count(h, "\n") + 1
}

func (w *Window) resize() {
	if w.width == 0 {
		return
	}
	w.vpHeight = max(w.height-w.headerHeight()-1, 1) // 1 footer line
}

// expireFlash schedules the flash check when a flash is showing and no check
// is pending yet.
func (w *Window) expireFlash() tea.Cmd {
	if w.flash == "" || w.flashWait {
		return nil
	}
	w.flashWait = true
	return tea.Tick(time.Until(w.flashExp), func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

func (w *Window) Init() tea.Cmd {
	return tea.WindowSize()
}

func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.resize()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			closeScreen(w.screen)
			return w, tea.Quit
		}

	case flashExpiredMsg:
		w.flashWait = false
		if !time.Now().Before(w.flashExp) {
			w.flash = ""
		}
		return w, w.expireFlash()
	}

	// Forward all messages to the active screen.
	newScreen, cmd := w.screen.Update(msg, w)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if newScreen != w.screen {
		w.screen = newScreen
		// Notify the new screen of the current terminal dimensions so it
		// can initialize its viewport height.
		sizeMsg := tea.WindowSizeMsg{Width: w.width, Height: w.height}
		newScreen2, cmd2 := w.screen.Update(sizeMsg, w)
		if cmd2 != nil {
			cmds = append(cmds, cmd2)
		}
		if newScreen2 != w.screen {
			w.screen = newScreen2
		}
	}

	if cmd := w.expireFlash(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return w, tea.Batch(cmds...)
}

func (w *Window) View() string {
	if w.width == 0 {
		return "Starting..."
	}

	header := RenderHeader(w.header, w.width, w.height)
	content := w.screen.View(w)
	footer := w.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (w *Window) renderFooter() string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	descStyle := lipgloss.NewStyle().Foreground(ColorField)

	// Left: screen indicator + window status (error > flash)
	screenStatus := w.screen.FooterStatus(w)
	var windowStatus string
	if w.err != nil {
		windowStatus = lipgloss.NewStyle().Foreground(ColorError).Render(w.err.Error())
	} else if w.flash != "" && time.Now().Before(w.flashExp) {
		windowStatus = lipgloss.NewStyle().Foreground(ColorOrange).Render(w.flash)
	}

	left := screenStatus
	if screenStatus != "" && windowStatus != "" {
		left += " "
	}
	left += windowStatus

	// Right: screen keys + base keys
	var keys []string
	for _, fk := range w.screen.FooterKeys(w) {
		keys = append(keys, keyStyle.Render(fk.Key)+" "+descStyle.Render(fk.Desc))
	}
	keys = append(keys, keyStyle.Render("q")+" "+descStyle.Render("quit"))

	right := strings.Join(keys, "  ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	gap := max(w.width-leftWidth-rightWidth, 2)

	return left + strings.Repeat(" ", gap) + right
}
