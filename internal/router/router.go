package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/NovaNexusIO/HelpMate/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one. Esc returns.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen. The first-run steps use
// it so that a finished step cannot be returned to.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the stack of open screens and routes messages to the top one.
type Router struct {
	stack  []screen.Screen
	logger *zap.Logger
}

// New returns a Router showing initial. A nil logger disables logging.
func New(initial screen.Screen, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{stack: []screen.Screen{initial}, logger: logger}
}

func (r *Router) top() int { return len(r.stack) - 1 }

func titleOf(s screen.Screen) string {
	if s == nil {
		return ""
	}
	return s.Title()
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	r.logger.Debug("screen pushed",
		zap.String("screen", s.Title()),
		zap.Int("depth", len(r.stack)))
	return s.Init()
}

// Pop closes the top screen. The last screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	closed := r.stack[r.top()]
	r.stack = r.stack[:r.top()]
	r.logger.Debug("screen popped",
		zap.String("screen", closed.Title()),
		zap.Int("depth", len(r.stack)))
	return nil
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	from := titleOf(r.Active())
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
	} else {
		r.stack[r.top()] = s
	}
	r.logger.Info("screen replaced",
		zap.String("from", from),
		zap.String("to", s.Title()))
	return s.Init()
}

// Active returns the top screen, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth is the number of open screens.
func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the top
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	if len(r.stack) == 0 {
		return nil
	}
	updated, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = updated
	return cmd
}

// View renders the top screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
