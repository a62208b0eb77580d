package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CursorKeys are the bindings understood by Cursor.HandleKey.
type CursorKeys struct {
	Down     key.Binding
	Up       key.Binding
	Home     key.Binding
	End      key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

var DefaultCursorKeys = CursorKeys{
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↑/↓ k/j", "navigate")),
	Up:       key.NewBinding(key.WithKeys("k", "up")),
	Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("Home/End g/G", "jump")),
	End:      key.NewBinding(key.WithKeys("G", "end")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
}

// Cursor provides scrollable list navigation. Screens that need a navigable
// list embed this struct and call HandleKey in their Update method. With Wrap
// set, stepping past either end continues at the other one.
type Cursor struct {
	Pos       int  // highlighted item index
	Offset    int  // scroll offset (first visible item)
	VpHeight  int  // visible rows
	ItemCount int  // total items
	Wrap      bool // single steps wrap around the ends
}

// AtEnd reports whether the cursor is on the last item.
func (c *Cursor) AtEnd() bool {
	return c.ItemCount > 0 && c.Pos == c.ItemCount-1
}

// EnsureVisible adjusts Offset so Pos is within the visible window.
func (c *Cursor) EnsureVisible() {
	if c.Pos < c.Offset {
		c.Offset = c.Pos
	}
	if c.Pos >= c.Offset+c.VpHeight {
		c.Offset = c.Pos - c.VpHeight + 1
	}
}

// Set moves the cursor to pos, clamped to the item range.
func (c *Cursor) Set(pos int) {
	c.Pos = min(max(pos, 0), max(c.ItemCount-1, 0))
	c.EnsureVisible()
}

func (c *Cursor) step(delta int) {
	if c.ItemCount == 0 {
		return
	}
	next := c.Pos + delta
	if c.Wrap {
		next = (next%c.ItemCount + c.ItemCount) % c.ItemCount
	}
	c.Set(next)
}

// HandleKey processes navigation keys (j/k/G/g/arrows/pgdn/pgup).
// Returns true if the key was handled.
func (c *Cursor) HandleKey(msg tea.KeyMsg) bool {
	keys := DefaultCursorKeys
	switch {
	case key.Matches(msg, keys.Down):
		c.step(1)
	case key.Matches(msg, keys.Up):
		c.step(-1)
	case key.Matches(msg, keys.End):
		c.Set(c.ItemCount - 1)
	case key.Matches(msg, keys.Home):
		c.Set(0)
	case key.Matches(msg, keys.PageDown):
		c.Set(c.Pos + c.VpHeight)
	case key.Matches(msg, keys.PageUp):
		c.Set(c.Pos - c.VpHeight)
	default:
		return false
	}
	return true
}

// FooterKeys returns the standard navigation keybinding hints.
func (c *Cursor) FooterKeys() []FooterKey {
	return BindingKeys(DefaultCursorKeys.Down, DefaultCursorKeys.Home)
}

// BindingKeys converts the help text of key bindings into footer hints.
// Bindings without help text are skipped.
func BindingKeys(bindings ...key.Binding) []FooterKey {
	var keys []FooterKey
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		keys = append(keys, FooterKey{Key: h.Key, Desc: h.Desc})
	}
	return keys
}
