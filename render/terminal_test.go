package render

import (
	"strings"
	"testing"
	"time"

	"github.com/bernd/carousel/carousel"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testSlides(n int) []carousel.Slide {
	titles := []string{"Welcome", "Keyboard", "Wheel", "Drag", "Click", "Wrap around", "Configure"}
	slides := make([]carousel.Slide, n)
	for i := range slides {
		slides[i] = carousel.Slide{Title: titles[i%len(titles)], Content: "Some **bold** text."}
	}
	return slides
}

func snapOptions() carousel.Options {
	opts := carousel.DefaultOptions()
	opts.TransitionDuration = 0
	return opts
}

func newTestCarousel(t *testing.T, n int, opts carousel.Options, clock *fakeClock) (*carousel.Carousel, *Terminal) {
	t.Helper()
	term := NewTerminal(opts, WithMarkdownStyle("notty"), WithClock(clock.now))
	c, err := carousel.New(testSlides(n), opts, term)
	require.NoError(t, err)
	return c, term
}

func TestTerminal_MountAndAccessibilityState(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c, term := newTestCarousel(t, 7, snapOptions(), clock)

	for i := range 7 {
		s, ok := term.Surface(i)
		require.True(t, ok)
		assert.Equal(t, i+1, s.Position)
		assert.Equal(t, 7, s.SetSize)
		assert.Equal(t, i == 0, s.Current, "slide %d", i)
	}

	c.Advance(carousel.Prev)
	for i := range 7 {
		s, _ := term.Surface(i)
		assert.Equal(t, i == 6, s.Current, "slide %d", i)
	}

	_, ok := term.Surface(7)
	assert.False(t, ok)
}

func TestTerminal_MountTagsSurfacesByPosition(t *testing.T) {
	term := NewTerminal(snapOptions())
	slides := testSlides(3)
	for i := range slides {
		slides[i].Index = 9
	}
	term.Mount(slides)

	for i := range 3 {
		s, ok := term.Surface(i)
		require.True(t, ok)
		assert.Equal(t, i, s.ID)
		assert.Equal(t, slides[i].Title, s.Title)
	}
}

func TestTerminal_RenderUnknownSlideIsIgnored(t *testing.T) {
	term := NewTerminal(snapOptions())
	term.Mount(testSlides(2))
	assert.NotPanics(t, func() {
		term.Render(5, carousel.Descriptor{Opacity: 1})
		term.Render(-1, carousel.Descriptor{Opacity: 1})
	})
}

func TestTerminal_ZeroDurationSnaps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c, term := newTestCarousel(t, 7, snapOptions(), clock)

	c.Advance(carousel.Next)
	assert.False(t, term.Animating())
	assert.Equal(t, 1.0, term.Descriptor(1).Scale)
	assert.Equal(t, -200.0, term.Descriptor(0).TranslateY)
}

func TestTerminal_Transition(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := carousel.DefaultOptions()
	opts.TransitionDuration = 100 * time.Millisecond
	c, term := newTestCarousel(t, 7, opts, clock)

	assert.False(t, term.Animating(), "the initial pass is not animated")

	c.Advance(carousel.Next)
	assert.True(t, term.Animating())

	clock.advance(50 * time.Millisecond)
	mid := term.Descriptor(1)
	assert.InDelta(t, 100.0, mid.TranslateY, 1e-9)
	assert.InDelta(t, 0.85, mid.Scale, 1e-9)
	assert.True(t, mid.Focused, "discrete fields switch immediately")
	assert.Equal(t, carousel.FocusedZ, mid.ZIndex)

	entering := term.Descriptor(2)
	assert.InDelta(t, 0.5, entering.Opacity, 1e-9)
	assert.InDelta(t, 100.0, entering.TranslateY, 1e-9)
	assert.InDelta(t, 0.65, entering.Scale, 1e-9)

	clock.advance(50 * time.Millisecond)
	assert.False(t, term.Animating())
	assert.Equal(t, carousel.DescriptorFor(0, opts), term.Descriptor(1))
}

func TestTerminal_TransitionRestartsFromDisplayedState(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := carousel.DefaultOptions()
	opts.TransitionDuration = 100 * time.Millisecond
	c, term := newTestCarousel(t, 7, opts, clock)

	c.Advance(carousel.Next)
	clock.advance(50 * time.Millisecond)
	c.Advance(carousel.Prev)

	// Slide 1 was halfway to the centre and now heads back down.
	assert.InDelta(t, 100.0, term.Descriptor(1).TranslateY, 1e-9)
	clock.advance(50 * time.Millisecond)
	assert.InDelta(t, 150.0, term.Descriptor(1).TranslateY, 1e-9)
}

func TestTerminal_UnchangedDescriptorKeepsTransition(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := carousel.DefaultOptions()
	opts.TransitionDuration = 100 * time.Millisecond
	term := NewTerminal(opts, WithClock(clock.now))
	term.Mount(testSlides(1))

	hidden := carousel.DescriptorFor(5, opts)
	focused := carousel.DescriptorFor(0, opts)
	term.Render(0, hidden)
	term.Render(0, focused)
	clock.advance(50 * time.Millisecond)
	term.Render(0, focused)

	assert.InDelta(t, 0.5, term.Descriptor(0).Opacity, 1e-9)
}

func TestTerminal_View(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c, term := newTestCarousel(t, 7, snapOptions(), clock)

	view := ansi.Strip(term.View(80, 30))
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 30)
	for _, l := range lines {
		assert.Equal(t, 80, ansi.StringWidth(l))
	}

	assert.Contains(t, view, "▸ Welcome")
	assert.Contains(t, view, "1/7")
	assert.Contains(t, view, "Keyboard")
	assert.Contains(t, view, "2/7")
	assert.NotContains(t, view, "Wheel", "hidden slides are not drawn")
	assert.NotContains(t, view, "Configure", "the last slide is not a neighbour of the first")

	c.Advance(carousel.Next)
	view = ansi.Strip(term.View(80, 30))
	assert.Contains(t, view, "▸ Keyboard")
	assert.Contains(t, view, "Welcome")
	assert.Contains(t, view, "Wheel")
	assert.NotContains(t, view, "Configure")
}

func TestTerminal_ViewRendersMarkdown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := snapOptions()
	term := NewTerminal(opts, WithMarkdownStyle("dark"), WithClock(clock.now))
	_, err := carousel.New(testSlides(3), opts, term)
	require.NoError(t, err)

	view := ansi.Strip(term.View(80, 30))
	assert.Contains(t, view, "Some bold text.")
	assert.NotContains(t, view, "**")
}

func TestTerminal_ViewEmptySize(t *testing.T) {
	term := NewTerminal(snapOptions())
	term.Mount(testSlides(3))
	assert.Equal(t, "", term.View(0, 10))
}

func TestTerminal_FocusedCardStyle(t *testing.T) {
	lipgloss.DefaultRenderer().SetColorProfile(termenv.TrueColor)
	defer lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)

	clock := &fakeClock{t: time.Unix(0, 0)}
	_, term := newTestCarousel(t, 3, snapOptions(), clock)

	view := term.View(80, 30)
	assert.Contains(t, view, "\x1b[", "cards are styled")
	assert.Contains(t, ansi.Strip(view), "╭")
}

func TestTerminal_SlideAt(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c, term := newTestCarousel(t, 7, snapOptions(), clock)
	c.Advance(carousel.Next)

	_, ok := term.SlideAt(40, 15)
	assert.False(t, ok, "nothing is hit before the first view")

	// 80x30 with three slots of ten rows: the focused card spans rows 10-19,
	// the next card rows 22-28 and the previous one rows 2-8.
	term.View(80, 30)
	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"centre hits the focused slide", 40, 15, 1, true},
		{"below hits the next slide", 40, 25, 2, true},
		{"above hits the previous slide", 40, 5, 0, true},
		{"gap between cards", 40, 20, 0, false},
		{"left margin", 0, 15, 0, false},
		{"outside the surface", 40, 45, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := term.SlideAt(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	require.NoError(t, c.JumpTo(0))
	term.View(80, 30)
	_, ok = term.SlideAt(40, 5)
	assert.False(t, ok, "nothing is drawn above the first slide")
}

func TestTerminal_SlideAtPrefersTopmost(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := snapOptions()
	term := NewTerminal(opts, WithMarkdownStyle("notty"), WithClock(clock.now))
	term.Mount(testSlides(2))

	// Both cards centred on the same spot; the focused one is on top.
	term.Render(0, carousel.Descriptor{Opacity: 1, Scale: 0.7, ZIndex: carousel.NeighborZ})
	term.Render(1, carousel.Descriptor{Opacity: 1, Scale: 1, ZIndex: carousel.FocusedZ, Focused: true})
	term.View(80, 30)

	got, ok := term.SlideAt(40, 15)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestTerminal_SlideAtFollowsLastView(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts := carousel.DefaultOptions()
	opts.TransitionDuration = 100 * time.Millisecond
	c, term := newTestCarousel(t, 7, opts, clock)

	c.Advance(carousel.Next)
	clock.advance(50 * time.Millisecond)
	term.View(80, 30)

	// Slide 1 is drawn halfway between the bottom slot and the centre; the
	// hit boxes stay where it was drawn even as the clock moves on.
	clock.advance(50 * time.Millisecond)
	got, ok := term.SlideAt(40, 20)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	term.View(80, 30)
	_, ok = term.SlideAt(40, 20)
	assert.False(t, ok, "the next view settles the layout")
}

func TestTerminal_ViewNarrowTerminal(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	_, term := newTestCarousel(t, 3, snapOptions(), clock)

	for _, width := range []int{1, 5, 8, 12} {
		lines := strings.Split(term.View(width, 30), "\n")
		assert.Len(t, lines, 30)
		for _, l := range lines {
			assert.LessOrEqual(t, ansi.StringWidth(l), width, "width %d", width)
		}
		got, ok := term.SlideAt(width/2, 15)
		require.True(t, ok, "width %d", width)
		assert.Equal(t, 0, got)
	}
}

func TestTerminal_Label(t *testing.T) {
	assert.Equal(t, "carousel", NewTerminal(snapOptions()).Label())
	assert.Equal(t, "Demo deck", NewTerminal(snapOptions(), WithLabel("Demo deck")).Label())
}

func TestOverlay(t *testing.T) {
	canvas := []string{"..........", "..........", ".........."}
	overlay(canvas, "ab\ncd\nef", 3, 1)
	assert.Equal(t, []string{"..........", "...ab.....", "...cd....."}, canvas)

	overlay(canvas, "wxyz", 8, 0)
	assert.Equal(t, "........wx", canvas[0], "lines are clipped at the right edge")
}
