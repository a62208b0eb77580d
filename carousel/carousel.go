// Package carousel implements a vertically stacked, circular slide carousel:
// the focus cursor, the mapping from slide offsets to visual descriptors and
// the translation of user input into navigation. Drawing is left to a
// Renderer.
package carousel

import (
	"errors"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// Slide is one entry of the carousel. Content is opaque to this package.
type Slide struct {
	Index   int
	Title   string
	Content string
}

// Renderer draws slides. Mount is called once with every slide in order;
// Render is then called once per slide on every render pass.
type Renderer interface {
	Mount(slides []Slide)
	Render(id int, d Descriptor)
}

// Carousel owns the focus state and keeps the renderer in sync with it.
type Carousel struct {
	id       string
	slides   []Slide
	opts     Options
	state    *State
	renderer Renderer
	log      *zap.Logger
}

// Option customizes a Carousel.
type Option func(*Carousel)

// WithLogger sets the logger used for navigation events.
func WithLogger(log *zap.Logger) Option {
	return func(c *Carousel) {
		if log != nil {
			c.log = log
		}
	}
}

// New mounts slides on r and renders the initial pass focused on slide 0.
func New(slides []Slide, opts Options, r Renderer, options ...Option) (*Carousel, error) {
	state, err := NewState(len(slides))
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &ConfigurationError{Reason: "renderer is required"}
	}

	// A slide's identity is its position in the sequence.
	ordered := make([]Slide, len(slides))
	for i, s := range slides {
		s.Index = i
		ordered[i] = s
	}

	c := &Carousel{
		id:       xid.New().String(),
		slides:   ordered,
		opts:     opts,
		state:    state,
		renderer: r,
		log:      zap.NewNop(),
	}
	for _, o := range options {
		o(c)
	}
	c.log = c.log.With(zap.String("carousel", c.id))

	r.Mount(c.slides)
	c.render()
	return c, nil
}

func (c *Carousel) ID() string        { return c.id }
func (c *Carousel) Options() Options  { return c.opts }
func (c *Carousel) Len() int          { return c.state.Len() }
func (c *Carousel) Current() int      { return c.state.Current() }
func (c *Carousel) Slides() []Slide   { return c.slides }
func (c *Carousel) Slide(i int) Slide { return c.slides[i] }

// Advance moves the focus one step and re-renders.
func (c *Carousel) Advance(dir Direction) {
	c.state.Advance(dir)
	c.log.Debug("advanced", zap.Int("direction", int(dir)), zap.Int("current", c.state.Current()))
	c.render()
}

// JumpTo focuses slide i and re-renders. A rejected jump leaves the focus and
// the surface untouched.
func (c *Carousel) JumpTo(i int) error {
	if err := c.state.JumpTo(i); err != nil {
		var invalid *InvalidIndexError
		if errors.As(err, &invalid) {
			c.log.Debug("jump rejected", zap.Int("index", invalid.Index), zap.Int("count", invalid.Count))
		}
		return err
	}
	c.log.Debug("jumped", zap.Int("current", i))
	c.render()
	return nil
}

func (c *Carousel) render() {
	for i := range c.slides {
		c.renderer.Render(c.slides[i].Index, DescriptorFor(c.state.Offset(i), c.opts))
	}
}
