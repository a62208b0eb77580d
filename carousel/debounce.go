package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer collapses bursts of triggers into one trailing call. It runs on
// the bubbletea update loop: Trigger schedules a tick and Settle accepts only
// the tick of the most recent trigger, so every new trigger rescinds the one
// before it.
type Debouncer[T any] struct {
	window  time.Duration
	gen     uint64
	pending bool
}

type debounceMsg[T any] struct {
	owner *Debouncer[T]
	gen   uint64
	value T
}

func NewDebouncer[T any](window time.Duration) *Debouncer[T] {
	return &Debouncer[T]{window: window}
}

// Trigger restarts the window with value as the payload of the trailing call.
func (d *Debouncer[T]) Trigger(value T) tea.Cmd {
	d.gen++
	d.pending = true
	msg := debounceMsg[T]{owner: d, gen: d.gen, value: value}
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return msg
	})
}

// Settle reports whether msg is the live tick of this debouncer and returns
// its payload. Ticks from other debouncers, stale ticks and ticks arriving
// after Cancel are rejected.
func (d *Debouncer[T]) Settle(msg tea.Msg) (T, bool) {
	var zero T
	m, ok := msg.(debounceMsg[T])
	if !ok || m.owner != d {
		return zero, false
	}
	if !d.pending || m.gen != d.gen {
		return zero, false
	}
	d.pending = false
	return m.value, true
}

// Pending reports whether a trailing call is scheduled.
func (d *Debouncer[T]) Pending() bool { return d.pending }

// Cancel rescinds the scheduled call, if any.
func (d *Debouncer[T]) Cancel() {
	if d.pending {
		d.gen++
		d.pending = false
	}
}

// Owns reports whether msg was produced by this debouncer, live or stale.
func (d *Debouncer[T]) Owns(msg tea.Msg) bool {
	m, ok := msg.(debounceMsg[T])
	return ok && m.owner == d
}
