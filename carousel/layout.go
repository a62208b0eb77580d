package carousel

import (
	"slices"
	"time"
)

// Layout constants shared with renderers.
const (
	Spacing     = 200 // translateY units per offset step
	FocusedZ    = 10
	NeighborZ   = 1
	HiddenScale = 0.6
)

// Options configures a carousel. It is read-only once the carousel is built.
type Options struct {
	VisibleRange       []int         // offsets from the focused slide that are shown
	SlideScale         float64       // scale of visible, unfocused slides, in (0,1]
	DragThreshold      float64       // pointer travel in pixels that counts as a swipe
	TransitionDuration time.Duration // advisory, consumed by renderers
	WheelDebounce      time.Duration // trailing-edge window for wheel input
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		VisibleRange:       []int{-1, 0, 1},
		SlideScale:         0.7,
		DragThreshold:      50,
		TransitionDuration: 600 * time.Millisecond,
		WheelDebounce:      100 * time.Millisecond,
	}
}

// Visible reports whether offset falls inside the visible range.
func (o Options) Visible(offset int) bool {
	return slices.Contains(o.VisibleRange, offset)
}

// Descriptor is the visual state of one slide for a single render pass.
type Descriptor struct {
	Opacity    float64
	TranslateY float64
	Scale      float64
	ZIndex     int
	Focused    bool
}

// DescriptorFor maps a slide's offset from the focused index to its visual
// state. Slides outside the visible range collapse to the hidden descriptor so
// that a slide leaving the window is reset on the next pass.
func DescriptorFor(offset int, o Options) Descriptor {
	if !o.Visible(offset) {
		return Descriptor{
			Opacity:    0,
			TranslateY: 0,
			Scale:      HiddenScale,
			ZIndex:     0,
			Focused:    false,
		}
	}

	d := Descriptor{
		Opacity:    1,
		TranslateY: float64(offset * Spacing),
		Scale:      o.SlideScale,
		ZIndex:     NeighborZ,
	}
	if offset == 0 {
		d.Scale = 1
		d.ZIndex = FocusedZ
		d.Focused = true
	}
	return d
}
