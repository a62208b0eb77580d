package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScreen verifies the Screen interface can be implemented.
type stubScreen struct {
	updated bool
	closed  int
	keys    []FooterKey
	status  string
}

func (s *stubScreen) Update(msg tea.Msg, w *Window) (Screen, tea.Cmd) {
	s.updated = true
	return s, nil
}
func (s *stubScreen) View(w *Window) string            { return "stub" }
func (s *stubScreen) FooterKeys(w *Window) []FooterKey { return s.keys }
func (s *stubScreen) FooterStatus(w *Window) string    { return s.status }
func (s *stubScreen) Close()                           { s.closed++ }

// switchScreen returns a different Screen from Update.
type switchScreen struct {
	target Screen
}

func (s *switchScreen) Update(msg tea.Msg, w *Window) (Screen, tea.Cmd) {
	return s.target, nil
}
func (s *switchScreen) View(w *Window) string            { return "" }
func (s *switchScreen) FooterKeys(w *Window) []FooterKey { return nil }
func (s *switchScreen) FooterStatus(w *Window) string    { return "" }

func testHeader() *HeaderInfo {
	return &HeaderInfo{Deck: "demo", InstanceID: "abc123"}
}

func TestScreenInterface(t *testing.T) {
	var s Screen = &stubScreen{}
	assert.Equal(t, "stub", s.View(nil))
}

func TestWindow_Init(t *testing.T) {
	w := NewWindow(testHeader(), &stubScreen{})
	cmd := w.Init()
	assert.NotNil(t, cmd)
}

func TestWindow_WindowSizeMsg(t *testing.T) {
	s := &stubScreen{}
	w := NewWindow(testHeader(), s)
	updated, _ := w.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	win := updated.(*Window)
	assert.Equal(t, 100, win.Width())
	assert.Equal(t, 40, win.Height())
	assert.Equal(t, 40-win.ContentTop()-1, win.VpHeight())
	assert.True(t, s.updated)
}

func TestWindow_ContentTop(t *testing.T) {
	w := NewWindow(testHeader(), &stubScreen{})

	w.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 4, w.ContentTop(), "full header is three wordmark rows plus the tagline")

	w.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Equal(t, 1, w.ContentTop())
	assert.Equal(t, 10, w.VpHeight())
}

func TestWindow_Flash(t *testing.T) {
	s := &stubScreen{}
	w := NewWindow(testHeader(), s)
	w.SetFlash("hello")
	assert.Equal(t, "hello", w.Flash())
}

func TestWindow_FlashExpiry(t *testing.T) {
	w := NewWindow(testHeader(), &stubScreen{})
	_, cmd := w.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd, "nothing is scheduled without a flash")

	w.SetFlash("jumped")
	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.NotNil(t, cmd, "a flash schedules its expiry")

	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd, "only one expiry is pending at a time")

	// A check that fires early keeps the flash and reschedules.
	w.Update(flashExpiredMsg{})
	assert.Equal(t, "jumped", w.Flash())

	w.flashExp = time.Now().Add(-time.Millisecond)
	_, cmd = w.Update(flashExpiredMsg{})
	assert.Empty(t, w.Flash())
	assert.Nil(t, cmd)
}

func TestWindow_ScreenSwitch(t *testing.T) {
	s2 := &switchScreen{target: &stubScreen{}}

	w := NewWindow(testHeader(), s2)
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ := w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	win := updated.(*Window)
	assert.IsType(t, &stubScreen{}, win.Screen())
	assert.True(t, win.Screen().(*stubScreen).updated, "new screen receives the current size")
}

func TestWindow_CtrlCClosesScreen(t *testing.T) {
	s := &stubScreen{}
	w := NewWindow(testHeader(), s)
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, 1, s.closed)
	assert.False(t, s.updated, "ctrl+c is not forwarded")
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuit(t *testing.T) {
	s := &stubScreen{}
	cmd := Quit(s)
	assert.Equal(t, 1, s.closed)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// Screens without Close are accepted.
	cmd = Quit(&switchScreen{})
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindow_View(t *testing.T) {
	s := &stubScreen{
		keys:   []FooterKey{{Key: "o", Desc: "outline"}},
		status: "2/7",
	}
	w := NewWindow(testHeader(), s)
	assert.Equal(t, "Starting...", w.View())

	w.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	view := ansi.Strip(w.View())
	assert.Contains(t, view, "demo ╱╱ abc123")
	assert.Contains(t, view, "stub")
	assert.Contains(t, view, "2/7")
	assert.Contains(t, view, "o outline")
	assert.Contains(t, view, "q quit")
}

func TestWindow_ErrorTakesPrecedenceOverFlash(t *testing.T) {
	w := NewWindow(testHeader(), &stubScreen{})
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	w.SetFlash("jumped")
	w.SetError(errors.New("slide index 9 out of range [0,7)"))

	require.Error(t, w.Err())
	footer := ansi.Strip(w.renderFooter())
	assert.Contains(t, footer, "out of range")
	assert.NotContains(t, footer, "jumped")

	w.ClearError()
	assert.Contains(t, ansi.Strip(w.renderFooter()), "jumped")
}

func TestWindow_SetHeader(t *testing.T) {
	w := NewWindow(nil, &stubScreen{})
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.NotContains(t, ansi.Strip(w.View()), "╱╱ abc123")

	w.SetHeader(testHeader())
	assert.Contains(t, ansi.Strip(w.View()), "demo ╱╱ abc123")
	assert.Equal(t, 10, w.VpHeight())
}
