package cmd

import (
	"fmt"
	"time"

	"github.com/bernd/carousel/carousel"
	"github.com/bernd/carousel/config"
	"github.com/bernd/carousel/deck"
	"github.com/bernd/carousel/render"
	"github.com/bernd/carousel/tui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const frameInterval = time.Second / 30

// frameMsg redraws the carousel while a transition is running.
type frameMsg struct{}

var outlineKey = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outline"))

// carouselScreen implements tui.Screen for browsing a deck. It owns the
// carousel, its terminal surface and the input that drives it.
type carouselScreen struct {
	deck       *deck.Deck
	carousel   *carousel.Carousel
	surface    *render.Terminal
	input      *carousel.Input
	cellHeight float64
	pressed    bool // left button is down
	animating  bool // a frame tick is scheduled
	log        *zap.Logger
}

func newCarouselScreen(d *deck.Deck, cfg *config.Config, log *zap.Logger, options ...render.Option) (*carouselScreen, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := cfg.Carousel
	surface := render.NewTerminal(opts, append([]render.Option{render.WithLabel(d.Title)}, options...)...)
	c, err := carousel.New(d.Slides(), opts, surface, carousel.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &carouselScreen{
		deck:       d,
		carousel:   c,
		surface:    surface,
		input:      carousel.NewInput(c, surface, opts, carousel.DefaultKeyMap(), log.Named("input")),
		cellHeight: cfg.CellHeight,
		log:        log,
	}, nil
}

func (s *carouselScreen) header() *tui.HeaderInfo {
	return &tui.HeaderInfo{Deck: s.deck.Title, InstanceID: s.carousel.ID()}
}

func (s *carouselScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "q":
			return s, tui.Quit(s)
		case key.Matches(msg, outlineKey):
			return newOutlineScreen(s), nil
		case s.input.Key(msg):
			w.ClearError()
			return s, s.animate()
		}

	case tea.MouseMsg:
		return s, s.handleMouse(msg, w)

	case tea.BlurMsg:
		s.pressed = false
		s.input.Leave()

	case frameMsg:
		s.animating = false
		return s, s.animate()

	default:
		if s.input.Settle(msg) {
			return s, s.animate()
		}
	}

	return s, nil
}

func (s *carouselScreen) handleMouse(msg tea.MouseMsg, w *tui.Window) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return s.input.Wheel(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		return s.input.Wheel(1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !onSurface(msg.Y, w) {
			return nil
		}
		s.pressed = true
		s.input.Press(s.pixels(msg.Y))

	case msg.Action == tea.MouseActionMotion:
		if s.input.Move(s.pixels(msg.Y)) {
			return s.animate()
		}

	case msg.Action == tea.MouseActionRelease:
		stepped := s.input.Release()
		pressed := s.pressed
		s.pressed = false
		if pressed && !stepped && s.input.Click(msg.X, msg.Y-w.ContentTop()) {
			w.ClearError()
			return s.animate()
		}
	}
	return nil
}

// onSurface reports whether terminal row lies between header and footer.
func onSurface(row int, w *tui.Window) bool {
	return row >= w.ContentTop() && row < w.ContentTop()+w.VpHeight()
}

// pixels converts a terminal row into the pointer coordinate used for drags.
func (s *carouselScreen) pixels(row int) float64 {
	return float64(row) * s.cellHeight
}

// animate schedules the next frame while the surface is in transition.
func (s *carouselScreen) animate() tea.Cmd {
	if s.animating || !s.surface.Animating() {
		return nil
	}
	s.animating = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (s *carouselScreen) View(w *tui.Window) string {
	return s.surface.View(w.Width(), w.VpHeight())
}

func (s *carouselScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	keys := s.input.KeyMap()
	return tui.BindingKeys(keys.Prev, keys.Next, outlineKey)
}

func (s *carouselScreen) FooterStatus(w *tui.Window) string {
	status := lipgloss.NewStyle().Foreground(tui.ColorField).Render(s.surface.Label()) + " " +
		lipgloss.NewStyle().Foreground(tui.ColorCyan).Render(fmt.Sprintf("%d/%d", s.carousel.Current()+1, s.carousel.Len()))
	if s.input.Dragging() {
		status += " " + lipgloss.NewStyle().Foreground(tui.ColorOrange).Render("grabbing")
	}
	return status
}

// Close releases the input; pending wheel steps and gestures are dropped.
func (s *carouselScreen) Close() {
	s.input.Close()
	s.log.Debug("carousel closed")
}
