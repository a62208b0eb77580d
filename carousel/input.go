package carousel

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Navigator receives the intents produced by Input.
type Navigator interface {
	Advance(dir Direction)
	JumpTo(i int) error
	Len() int
}

// HitTester resolves a surface cell to the ordinal of the slide drawn there.
type HitTester interface {
	SlideAt(x, y int) (int, bool)
}

// IntentKind discriminates navigation intents.
type IntentKind uint8

const (
	IntentStep IntentKind = iota // relative move by Step
	IntentJump                   // absolute move to Index
)

// Intent is a normalized navigation request, whatever input produced it.
type Intent struct {
	Kind  IntentKind
	Step  Direction
	Index int
}

func (i Intent) String() string {
	if i.Kind == IntentJump {
		return fmt.Sprintf("jump(%d)", i.Index)
	}
	return fmt.Sprintf("step(%+d)", int(i.Step))
}

// KeyMap defines the keys that move the carousel.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
	}
}

type dragState struct {
	active  bool    // tracking a press below threshold
	startY  float64 // reference coordinate in pixels
	stepped bool    // the current press already produced a step
}

// Input turns wheel, drag, keyboard and click events into intents. Each
// carousel owns its own Input; Close releases everything it holds.
type Input struct {
	nav       Navigator
	hits      HitTester
	keys      KeyMap
	threshold float64
	wheel     *Debouncer[Direction]
	drag      dragState
	closed    bool
	log       *zap.Logger
}

// NewInput wires an Input to nav. hits may be nil, in which case clicks are
// ignored.
func NewInput(nav Navigator, hits HitTester, opts Options, keys KeyMap, log *zap.Logger) *Input {
	if log == nil {
		log = zap.NewNop()
	}
	return &Input{
		nav:       nav,
		hits:      hits,
		keys:      keys,
		threshold: opts.DragThreshold,
		wheel:     NewDebouncer[Direction](opts.WheelDebounce),
		log:       log,
	}
}

func (in *Input) KeyMap() KeyMap { return in.keys }

// Wheel schedules one step in the direction of deltaY once the wheel has been
// quiet for the debounce window. Positive deltas move toward later slides.
func (in *Input) Wheel(deltaY float64) tea.Cmd {
	if in.closed || deltaY == 0 {
		return nil
	}
	dir := Next
	if deltaY < 0 {
		dir = Prev
	}
	return in.wheel.Trigger(dir)
}

// Settle consumes the debounce ticks scheduled by Wheel and reports whether
// msg belonged to this Input.
func (in *Input) Settle(msg tea.Msg) bool {
	if !in.wheel.Owns(msg) {
		return false
	}
	if dir, ok := in.wheel.Settle(msg); ok && !in.closed {
		in.apply(Intent{Kind: IntentStep, Step: dir})
	}
	return true
}

// WheelPending reports whether a debounced wheel step is waiting to fire.
func (in *Input) WheelPending() bool { return in.wheel.Pending() }

// Press starts a drag gesture at pointer coordinate y.
func (in *Input) Press(y float64) {
	if in.closed {
		return
	}
	in.drag = dragState{active: true, startY: y}
}

// Move feeds pointer motion while the button is held. The first movement
// beyond the threshold produces one step and ends the gesture; dragging the
// content down reveals earlier slides.
func (in *Input) Move(y float64) bool {
	if in.closed || !in.drag.active {
		return false
	}
	delta := y - in.drag.startY
	if math.Abs(delta) <= in.threshold {
		return false
	}
	dir := Next
	if delta > 0 {
		dir = Prev
	}
	in.drag.active = false
	in.drag.stepped = true
	in.apply(Intent{Kind: IntentStep, Step: dir})
	return true
}

// Release ends the gesture. It reports whether the gesture produced a step,
// in which case the release must not be treated as a click.
func (in *Input) Release() bool {
	stepped := in.drag.stepped
	if in.drag.active {
		in.log.Debug("drag cancelled below threshold")
	}
	in.drag = dragState{}
	return stepped
}

// Leave cancels the gesture when the pointer leaves the tracked surface.
func (in *Input) Leave() {
	if in.drag.active {
		in.log.Debug("drag cancelled on leave")
	}
	in.drag = dragState{}
}

// Dragging reports whether a gesture is being tracked.
func (in *Input) Dragging() bool { return in.drag.active }

// Key handles the navigation keys and reports whether msg was consumed.
func (in *Input) Key(msg tea.KeyMsg) bool {
	if in.closed {
		return false
	}
	switch {
	case key.Matches(msg, in.keys.Next):
		in.apply(Intent{Kind: IntentStep, Step: Next})
	case key.Matches(msg, in.keys.Prev):
		in.apply(Intent{Kind: IntentStep, Step: Prev})
	default:
		return false
	}
	return true
}

// Click focuses the slide drawn at cell (x, y). Clicks that miss every slide
// are ignored.
func (in *Input) Click(x, y int) bool {
	if in.closed || in.hits == nil {
		return false
	}
	idx, ok := in.hits.SlideAt(x, y)
	if !ok {
		return false
	}
	return in.apply(Intent{Kind: IntentJump, Index: idx}) == nil
}

// Close cancels the pending wheel step and any gesture. A closed Input
// ignores all further events.
func (in *Input) Close() {
	in.closed = true
	in.wheel.Cancel()
	in.drag = dragState{}
}

func (in *Input) apply(intent Intent) error {
	in.log.Debug("navigation intent", zap.Stringer("intent", intent))
	switch intent.Kind {
	case IntentJump:
		if intent.Index < 0 || intent.Index >= in.nav.Len() {
			return &InvalidIndexError{Index: intent.Index, Count: in.nav.Len()}
		}
		return in.nav.JumpTo(intent.Index)
	default:
		in.nav.Advance(intent.Step)
		return nil
	}
}
