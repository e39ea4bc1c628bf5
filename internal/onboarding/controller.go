package onboarding

import (
	"errors"

	"go.uber.org/zap"
)

// ErrEmptyDeck is returned when a controller is built without slides.
var ErrEmptyDeck = errors.New("onboarding deck has no slides")

// Controller walks a fixed deck of slides and signals completion once.
//
// All operations are synchronous and leave the controller in a valid state;
// the rendering surface only reads from it through the accessors.
type Controller struct {
	slides     []SlideContent
	index      int
	direction  Direction
	completed  bool
	onComplete func()
	logger     *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnComplete registers the completion callback. It runs at most once.
func WithOnComplete(fn func()) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// WithLogger sets the logger used for contract violations.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller positioned on the first slide.
func New(slides []SlideContent, opts ...Option) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	c := &Controller{
		slides:    append([]SlideContent(nil), slides...),
		direction: Forward,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Advance moves to the next slide, or completes the flow from the last one.
func (c *Controller) Advance() Transition {
	t := c.transition()
	if c.completed {
		return t
	}

	if c.index < len(c.slides)-1 {
		c.index++
		c.direction = Forward
		t.To = c.index
		t.Direction = Forward
		return t
	}

	c.complete("advance")
	t.Completed = true
	return t
}

// Skip completes the flow from any slide without moving.
func (c *Controller) Skip() Transition {
	t := c.transition()
	if c.completed {
		return t
	}
	c.complete("skip")
	t.Completed = true
	return t
}

// JumpTo moves directly to slide i. Out-of-range indices are clamped to the
// nearest valid slide. Jumping never completes the flow, and is ignored once
// the flow has completed.
func (c *Controller) JumpTo(i int) Transition {
	t := c.transition()
	if c.completed {
		return t
	}

	target, clamped := c.clamp(i)
	if clamped {
		c.logger.Warn("jump target out of range, clamped",
			zap.Int("requested", i),
			zap.Int("clamped_to", target),
			zap.Int("slides", len(c.slides)),
		)
		t.Clamped = true
	}

	if target == c.index {
		return t
	}

	c.direction = directionBetween(c.index, target)
	c.index = target
	t.To = target
	t.Direction = c.direction
	return t
}

// Index returns the current slide position.
func (c *Controller) Index() int { return c.index }

// Direction returns the direction of the last transition that moved.
func (c *Controller) Direction() Direction { return c.direction }

// Completed reports whether the completion event has fired.
func (c *Controller) Completed() bool { return c.completed }

// Len returns the number of slides.
func (c *Controller) Len() int { return len(c.slides) }

// IsLast reports whether the current slide is the final one.
func (c *Controller) IsLast() bool { return c.index == len(c.slides)-1 }

// Current returns the slide at the current position.
func (c *Controller) Current() SlideContent { return c.slides[c.index] }

// Slides returns a copy of the deck.
func (c *Controller) Slides() []SlideContent {
	return append([]SlideContent(nil), c.slides...)
}

// State returns a read-only snapshot for renderers.
func (c *Controller) State() State {
	return State{
		Index:     c.index,
		Direction: c.direction,
		Completed: c.completed,
		Total:     len(c.slides),
	}
}

func (c *Controller) transition() Transition {
	return Transition{
		From:      c.index,
		To:        c.index,
		Direction: c.direction,
	}
}

func (c *Controller) complete(via string) {
	c.completed = true
	c.logger.Debug("onboarding completed",
		zap.String("via", via),
		zap.Int("index", c.index),
	)
	if c.onComplete != nil {
		c.onComplete()
	}
}

func (c *Controller) clamp(i int) (int, bool) {
	switch {
	case i < 0:
		return 0, true
	case i > len(c.slides)-1:
		return len(c.slides) - 1, true
	default:
		return i, false
	}
}
