// Package render draws a carousel on a character grid. Terminal implements
// carousel.Renderer and carousel.HitTester; the hosting screen calls View
// with its content size and forwards mouse clicks in content coordinates.
package render

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bernd/carousel/carousel"
	"github.com/bernd/carousel/tui"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxCardWidth  = 72
	minCardHeight = 3 // two border rows plus the title
	// Cards fainter than this are not drawn and cannot be clicked.
	minOpacity = 0.5
)

// Surface is the externally observable state of one mounted slide.
type Surface struct {
	ID       int
	Title    string
	Position int  // 1-based position in the set
	SetSize  int  // number of slides in the set
	Current  bool // set only on the focused slide
	Target   carousel.Descriptor
}

type surface struct {
	Surface
	content string
	from    carousel.Descriptor
	start   time.Time // zero when not animating
	drawn   bool      // received at least one descriptor
}

type bodyKey struct {
	id    int
	width int
}

type placement struct {
	id         int
	x, y, w, h int
	d          carousel.Descriptor
}

// Terminal keeps one surface per slide and lays them out as bordered cards.
type Terminal struct {
	opts     carousel.Options
	label    string
	style    string
	now      func() time.Time
	surfaces []*surface

	width, height int
	placed        []placement // cards as drawn by the last View
	markdown      map[int]*glamour.TermRenderer
	bodies        map[bodyKey][]string
}

// Option customizes a Terminal.
type Option func(*Terminal)

// WithLabel sets the region label announced for the whole carousel.
func WithLabel(label string) Option {
	return func(t *Terminal) { t.label = label }
}

// WithMarkdownStyle selects a glamour standard style ("dark", "light",
// "notty", ...). The default picks one from the terminal background.
func WithMarkdownStyle(style string) Option {
	return func(t *Terminal) { t.style = style }
}

// WithClock replaces the time source used for transitions.
func WithClock(now func() time.Time) Option {
	return func(t *Terminal) { t.now = now }
}

func NewTerminal(opts carousel.Options, options ...Option) *Terminal {
	t := &Terminal{
		opts:     opts,
		label:    "carousel",
		now:      time.Now,
		markdown: make(map[int]*glamour.TermRenderer),
		bodies:   make(map[bodyKey][]string),
	}
	for _, o := range options {
		o(t)
	}
	return t
}

// Label returns the region label of the carousel.
func (t *Terminal) Label() string { return t.label }

// Mount creates one surface per slide, tagged with its ordinal.
func (t *Terminal) Mount(slides []carousel.Slide) {
	t.surfaces = make([]*surface, len(slides))
	t.placed = nil
	clear(t.bodies)
	for i, s := range slides {
		t.surfaces[i] = &surface{
			Surface: Surface{
				ID:       i,
				Title:    s.Title,
				Position: i + 1,
				SetSize:  len(slides),
			},
			content: s.Content,
		}
	}
}

// Render applies d to the surface of slide id. A changed descriptor starts a
// transition from wherever the surface currently is.
func (t *Terminal) Render(id int, d carousel.Descriptor) {
	s := t.lookup(id)
	if s == nil {
		return
	}
	s.Current = d.Focused
	if s.drawn && s.Target == d {
		return
	}
	now := t.now()
	if !s.drawn || t.opts.TransitionDuration <= 0 {
		s.from, s.start = d, time.Time{}
	} else {
		s.from, s.start = s.at(now, t.opts.TransitionDuration), now
	}
	s.Target = d
	s.drawn = true
}

func (t *Terminal) lookup(id int) *surface {
	if id < 0 || id >= len(t.surfaces) {
		return nil
	}
	return t.surfaces[id]
}

// Surface returns the state of slide id.
func (t *Terminal) Surface(id int) (Surface, bool) {
	s := t.lookup(id)
	if s == nil {
		return Surface{}, false
	}
	return s.Surface, true
}

// Descriptor returns the descriptor of slide id as currently displayed,
// which differs from the target while a transition runs.
func (t *Terminal) Descriptor(id int) carousel.Descriptor {
	s := t.lookup(id)
	if s == nil {
		return carousel.Descriptor{}
	}
	return s.at(t.now(), t.opts.TransitionDuration)
}

// Animating reports whether any surface is still in transition.
func (t *Terminal) Animating() bool {
	now := t.now()
	for _, s := range t.surfaces {
		if s.animating(now, t.opts.TransitionDuration) {
			return true
		}
	}
	return false
}

func (s *surface) animating(now time.Time, dur time.Duration) bool {
	return !s.start.IsZero() && now.Sub(s.start) < dur
}

func (s *surface) at(now time.Time, dur time.Duration) carousel.Descriptor {
	if !s.animating(now, dur) {
		return s.Target
	}
	p := float64(now.Sub(s.start)) / float64(dur)
	d := s.Target
	d.Opacity = lerp(s.from.Opacity, s.Target.Opacity, p)
	d.TranslateY = lerp(s.from.TranslateY, s.Target.TranslateY, p)
	d.Scale = lerp(s.from.Scale, s.Target.Scale, p)
	return d
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

// slotRows is the number of rows one offset step moves a card.
func (t *Terminal) slotRows() int {
	span := 1
	if len(t.opts.VisibleRange) > 0 {
		span = slices.Max(t.opts.VisibleRange) - slices.Min(t.opts.VisibleRange) + 1
	}
	return max(t.height/span, minCardHeight)
}

// layout places every drawable card, bottom-most first.
func (t *Terminal) layout() []placement {
	if t.width <= 0 || t.height <= 0 {
		return nil
	}
	now := t.now()
	slot := t.slotRows()
	fullWidth := max(min(t.width-4, maxCardWidth), 1)

	var out []placement
	for _, s := range t.surfaces {
		if !s.drawn {
			continue
		}
		d := s.at(now, t.opts.TransitionDuration)
		if d.Opacity < minOpacity {
			continue
		}
		w := min(max(int(math.Round(float64(fullWidth)*d.Scale)), 10), t.width)
		h := max(int(math.Round(float64(slot)*d.Scale)), minCardHeight)
		center := t.height/2 + int(math.Round(d.TranslateY/carousel.Spacing*float64(slot)))
		out = append(out, placement{
			id: s.ID,
			x:  max((t.width-w)/2, 0),
			y:  center - h/2,
			w:  w,
			h:  h,
			d:  d,
		})
	}
	slices.SortStableFunc(out, func(a, b placement) int {
		return a.d.ZIndex - b.d.ZIndex
	})
	return out
}

// SlideAt returns the topmost slide drawn at (x, y) in content coordinates,
// as laid out by the last View.
func (t *Terminal) SlideAt(x, y int) (int, bool) {
	for i := len(t.placed) - 1; i >= 0; i-- {
		c := t.placed[i]
		if x >= c.x && x < c.x+c.w && y >= c.y && y < c.y+c.h {
			return c.id, true
		}
	}
	return 0, false
}

// View draws the carousel into a width x height block.
func (t *Terminal) View(width, height int) string {
	t.width, t.height = width, height
	if width <= 0 || height <= 0 {
		t.placed = nil
		return ""
	}
	canvas := make([]string, height)
	for i := range canvas {
		canvas[i] = strings.Repeat(" ", width)
	}
	t.placed = t.layout()
	for _, c := range t.placed {
		overlay(canvas, t.card(t.surfaces[c.id], c), c.x, c.y)
	}
	return strings.Join(canvas, "\n")
}

func (t *Terminal) card(s *surface, c placement) string {
	innerW := max(c.w-2, 1)
	innerH := max(c.h-2, 1)

	marker := " "
	titleStyle := lipgloss.NewStyle().Foreground(tui.ColorField)
	border := tui.ColorField
	if s.Current {
		marker = "▸"
		titleStyle = lipgloss.NewStyle().Foreground(tui.ColorCyan).Bold(true)
		border = tui.ColorCyan
	}
	pos := fmt.Sprintf("%d/%d", s.Position, s.SetSize)
	title := ansi.Truncate(marker+" "+s.Title, max(innerW-len(pos)-1, 1), "…")
	gap := max(innerW-ansi.StringWidth(title)-len(pos), 1)
	lines := []string{titleStyle.Render(title) + strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(tui.ColorOrange).Render(pos)}

	for _, l := range t.body(s, innerW) {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, ansi.Truncate(l, innerW, ""))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerW).
		Height(innerH).
		MaxWidth(c.w).
		MaxHeight(c.h)
	if c.d.Opacity < 1 {
		style = style.Faint(true)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// body renders the markdown content of s wrapped to width, falling back to
// the raw text when rendering fails.
func (t *Terminal) body(s *surface, width int) []string {
	key := bodyKey{id: s.ID, width: width}
	if lines, ok := t.bodies[key]; ok {
		return lines
	}
	text := s.content
	if r := t.markdownRenderer(width); r != nil {
		if out, err := r.Render(s.content); err == nil {
			text = out
		}
	}
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	t.bodies[key] = lines
	return lines
}

func (t *Terminal) markdownRenderer(width int) *glamour.TermRenderer {
	if r, ok := t.markdown[width]; ok {
		return r
	}
	styleOpt := glamour.WithAutoStyle()
	if t.style != "" {
		styleOpt = glamour.WithStandardStyle(t.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		r = nil
	}
	t.markdown[width] = r
	return r
}

// overlay writes block onto canvas with its top-left corner at (x, y),
// clipping whatever falls outside the canvas.
func overlay(canvas []string, block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		bg := canvas[row]
		line = ansi.Truncate(line, max(ansi.StringWidth(bg)-x, 0), "")
		w := ansi.StringWidth(line)
		canvas[row] = ansi.Truncate(bg, x, "") + line + ansi.TruncateLeft(bg, x+w, "")
	}
}
