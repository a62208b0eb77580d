package cmd

import (
	"fmt"
	"strings"

	"github.com/bernd/carousel/carousel"
	"github.com/bernd/carousel/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// outlineScreen lists every slide of the deck and jumps to the selected one.
type outlineScreen struct {
	tui.Cursor
	parent *carouselScreen
}

func newOutlineScreen(parent *carouselScreen) *outlineScreen {
	return &outlineScreen{
		Cursor: tui.Cursor{
			Pos:       parent.carousel.Current(),
			ItemCount: parent.carousel.Len(),
			Wrap:      true,
		},
		parent: parent,
	}
}

func (o *outlineScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if err := o.parent.carousel.JumpTo(o.Pos); err != nil {
				w.SetError(err)
				return o, nil
			}
			w.ClearError()
			w.SetFlash(fmt.Sprintf("jumped to %s", o.parent.carousel.Slide(o.Pos).Title))
			return o.parent, o.parent.animate()
		case "esc", "o":
			return o.parent, nil
		case "q":
			return o, tui.Quit(o)
		default:
			o.HandleKey(msg)
		}

	case tea.WindowSizeMsg:
		o.VpHeight = max(w.VpHeight()-2, 1) // note line + blank
		o.EnsureVisible()

	case tea.MouseMsg:
		// The carousel is not interactive behind the outline.

	default:
		// Pending wheel steps and frames still belong to the carousel.
		_, cmd := o.parent.Update(msg, w)
		return o, cmd
	}

	return o, nil
}

func (o *outlineScreen) View(w *tui.Window) string {
	var lines []string
	note := lipgloss.NewStyle().Foreground(tui.ColorField).
		Render("Jump to a slide:")
	lines = append(lines, note, "")

	slides := o.parent.carousel.Slides()
	current := o.parent.carousel.Current()
	end := min(o.Offset+o.VpHeight, len(slides))
	for i := o.Offset; i < end; i++ {
		lines = append(lines, renderOutlineLine(slides[i], len(slides), i == o.Pos, i == current))
	}
	for len(lines) < w.VpHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderOutlineLine(s carousel.Slide, total int, highlighted, current bool) string {
	base, marker := tui.LineStyle(highlighted)

	width := len(fmt.Sprint(total))
	pos := base.Foreground(tui.ColorOrange).Render(fmt.Sprintf("%*d/%d", width, s.Index+1, total))
	title := base.Foreground(tui.ColorCyan).Render(s.Title)
	sp := base.Render(" ")

	line := marker + pos + sp + title
	if current {
		line += sp + base.Foreground(tui.ColorField).Render("(current)")
	}
	return line
}

func (o *outlineScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	keys := []tui.FooterKey{
		{Key: "enter", Desc: "jump"},
		{Key: "esc", Desc: "back"},
	}
	keys = append(keys, o.Cursor.FooterKeys()...)
	return keys
}

func (o *outlineScreen) FooterStatus(w *tui.Window) string {
	return fmt.Sprintf("%d slides", o.parent.carousel.Len())
}

func (o *outlineScreen) Close() { o.parent.Close() }
