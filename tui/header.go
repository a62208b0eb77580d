package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Theme colors
var (
	ColorCyan      = lipgloss.Color("#00d4ff")
	ColorPurple    = lipgloss.Color("#8b5cf6")
	ColorOrange    = lipgloss.Color("#f97316")
	ColorField     = lipgloss.Color("#0099cc")
	ColorError     = ColorPurple
	ColorHighlight = lipgloss.Color("#1e2d3d")
)

const (
	wordmark       = "CAROUSEL"
	tagline        = "round and round"
	taglineUpper   = "ROUND AND ROUND"
	fieldCharacter = "╱"
)

// letterGlyph holds the three rows of a block-art character.
type letterGlyph struct {
	Top string
	Mid string
	Bot string
}

// glyphs maps rune to its block-art representation. Each glyph is 3 rows tall.
var glyphs = map[rune]letterGlyph{
	'C': {
		Top: `▄▀▀▀`,
		Mid: `█   `,
		Bot: `▀▄▄▄`,
	},
	'A': {
		Top: `▄▀▀▄`,
		Mid: `█▄▄█`,
		Bot: `█  █`,
	},
	'R': {
		Top: `█▀▀▄`,
		Mid: `█▄▄▀`,
		Bot: `█  █`,
	},
	'O': {
		Top: `▄▀▀▄`,
		Mid: `█  █`,
		Bot: `▀▄▄▀`,
	},
	'U': {
		Top: `█  █`,
		Mid: `█  █`,
		Bot: `▀▄▄▀`,
	},
	'S': {
		Top: `▄▀▀▀`,
		Mid: `▀▀▀▄`,
		Bot: `▄▄▄▀`,
	},
	'E': {
		Top: `█▀▀▀`,
		Mid: `█▄▄ `,
		Bot: `█▄▄▄`,
	},
	'L': {
		Top: `█   `,
		Mid: `█   `,
		Bot: `█▄▄▄`,
	},
}

// buildWordmark assembles the 3-row block text for a given word.
func buildWordmark(word string) [3]string {
	var rows [3]string
	for i, ch := range word {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		if i > 0 {
			rows[0] += " "
			rows[1] += " "
			rows[2] += " "
		}
		rows[0] += g.Top
		rows[1] += g.Mid
		rows[2] += g.Bot
	}
	return rows
}

// applyGradient colors a string with a linear gradient from colorA to colorB.
func applyGradient(s string, colorA, colorB lipgloss.Color) string {
	runes := []rune(s)
	n := len(runes)
	if n == 0 {
		return s
	}

	aR, aG, aB, _ := colorA.RGBA()
	bR, bG, bB, _ := colorB.RGBA()

	var out strings.Builder
	for i, r := range runes {
		if r == ' ' {
			out.WriteRune(r)
			continue
		}
		t := float64(i) / float64(max(n-1, 1))
		cr := uint8(float64(aR>>8)*(1-t) + float64(bR>>8)*t)
		cg := uint8(float64(aG>>8)*(1-t) + float64(bG>>8)*t)
		cb := uint8(float64(aB>>8)*(1-t) + float64(bB>>8)*t)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", cr, cg, cb)))
		out.WriteString(style.Render(string(r)))
	}
	return out.String()
}

// CompactHeaderThreshold is the terminal height below which the header
// collapses to a single line.
const CompactHeaderThreshold = 20

const defaultBannerWidth = 80

// HeaderInfo identifies what the window is showing.
type HeaderInfo struct {
	Deck       string // deck title or path
	InstanceID string // carousel instance
}

func (info HeaderInfo) label() string {
	if info.InstanceID == "" {
		return info.Deck
	}
	return fmt.Sprintf("%s ╱╱ %s", info.Deck, info.InstanceID)
}

func fieldFill(n int) string {
	return lipgloss.NewStyle().Foreground(ColorField).Render(strings.Repeat(fieldCharacter, max(n, 0)))
}

// renderCompactLine produces a single line with the gradient name, the
// tagline and an optional right-aligned label, padded with field characters.
func renderCompactLine(label string, width int) string {
	name := applyGradient(wordmark, ColorCyan, ColorPurple)
	tag := lipgloss.NewStyle().Foreground(ColorOrange).Italic(true).Render(tagline)

	// "╱╱╱ CAROUSEL  tagline ╱...╱ label ╱╱╱"
	fixed := 3 + 1 + ansi.StringWidth(wordmark) + 2 + ansi.StringWidth(tagline) + 1 + 3
	var right string
	if label != "" {
		right = " " + lipgloss.NewStyle().Foreground(ColorField).Render(label) + " "
		fixed += ansi.StringWidth(label) + 2
	}
	fill := max(width-fixed, 1)

	return fieldFill(3) + " " + name + "  " + tag + " " + fieldFill(fill) + right + fieldFill(3)
}

// renderFullLines produces the block-art wordmark rows followed by the
// tagline row. label is right-aligned on the tagline row when set.
func renderFullLines(label string, width int) []string {
	rows := buildWordmark(wordmark)
	wordmarkWidth := ansi.StringWidth(rows[0])

	const leftFieldLen = 3
	const leftPadLen = leftFieldLen + 2

	var lines []string
	for _, row := range rows {
		colored := applyGradient(row, ColorCyan, ColorPurple)
		lines = append(lines, fieldFill(leftFieldLen)+"  "+colored+"  "+fieldFill(width-wordmarkWidth-leftPadLen-2))
	}

	tag := lipgloss.NewStyle().Foreground(ColorOrange).Italic(true).Render(taglineUpper)
	last := strings.Repeat(" ", leftPadLen) + tag
	if label != "" {
		styled := lipgloss.NewStyle().Foreground(ColorField).Render(label)
		gap := max(width-leftPadLen-ansi.StringWidth(tag)-ansi.StringWidth(styled), 2)
		last += strings.Repeat(" ", gap) + styled
	}
	return append(lines, last)
}

// RenderHeader produces the window header: wordmark, tagline and the deck /
// instance label. It collapses to one line on short terminals.
func RenderHeader(info *HeaderInfo, width int, height int) string {
	width = max(width, 40)
	label := ""
	if info != nil {
		label = info.label()
	}
	if height > 0 && height < CompactHeaderThreshold {
		return renderCompactLine(label, width)
	}
	return strings.Join(renderFullLines(label, width), "\n")
}

// RenderBanner produces a branding-only header string without a label.
func RenderBanner(width, height int) string {
	return RenderHeader(nil, width, height)
}

// PrintHeader prints the branding banner to stdout, sized to the terminal.
func PrintHeader() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	width, height = normalizeBannerSize(width, height, err)
	writeBanner(os.Stdout, width, height)
}

func writeBanner(w io.Writer, width, height int) {
	fmt.Fprintln(w, RenderBanner(width, height))
	fmt.Fprintln(w)
}

func normalizeBannerSize(width int, height int, err error) (int, int) {
	if err != nil || width <= 0 {
		width = defaultBannerWidth
	}
	if err != nil || height <= 0 {
		height = 0
	}
	return width, height
}
