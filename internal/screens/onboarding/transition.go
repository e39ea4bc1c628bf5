package onboarding

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"

	"github.com/NovaNexusIO/HelpMate/internal/onboarding"
)

const (
	frameRate     = 60
	frameInterval = time.Second / frameRate

	// slideDistance is how far, in columns, an entering slide starts from
	// its resting position.
	slideDistance = 16.0

	// A stiffness of 140 and damping of 28 at unit mass.
	springFrequency = 11.83
	springDamping   = 1.18

	settleThreshold = 0.5
)

// frameMsg advances the transition of generation gen.
type frameMsg struct {
	gen int
}

// transition springs the slide offset back to zero after each move. It is
// purely cosmetic: the controller state is already final when it starts.
type transition struct {
	spring   harmonica.Spring
	offset   float64
	velocity float64
	gen      int
	instant  bool
}

func newTransition(instant bool) *transition {
	return &transition{
		spring:  harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		instant: instant,
	}
}

// start begins a transition entering from the side given by dir. Frames of
// any earlier transition are invalidated.
func (t *transition) start(dir onboarding.Direction) tea.Cmd {
	t.gen++
	t.velocity = 0
	if t.instant {
		t.offset = 0
		return nil
	}
	t.offset = float64(dir.Sign()) * slideDistance
	return t.tick()
}

func (t *transition) tick() tea.Cmd {
	gen := t.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// step applies one frame and schedules the next until the spring settles.
func (t *transition) step(msg frameMsg) tea.Cmd {
	if msg.gen != t.gen {
		return nil
	}
	t.offset, t.velocity = t.spring.Update(t.offset, t.velocity, 0)
	if math.Abs(t.offset) < settleThreshold && math.Abs(t.velocity) < settleThreshold {
		t.offset, t.velocity = 0, 0
		return nil
	}
	return t.tick()
}

func (t *transition) settled() bool {
	return t.offset == 0 && t.velocity == 0
}

// column is the current horizontal shift in whole columns.
func (t *transition) column() int {
	return int(math.Round(t.offset))
}
