package consent

import (
	"go.uber.org/zap"
)

// Phase is the observable state of a Gate.
type Phase int

const (
	// NotAccepted is the initial phase: the acknowledgement box is unchecked.
	NotAccepted Phase = iota
	// Ready means the acknowledgement is checked and Accept will succeed.
	Ready
	// Accepted is terminal; the acceptance event has fired.
	Accepted
)

func (p Phase) String() string {
	switch p {
	case NotAccepted:
		return "not_accepted"
	case Ready:
		return "ready"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Gate holds the pledge acknowledgement and fires the acceptance event once.
// The gate enforces the acknowledgement itself; callers disabling their
// accept control is not relied upon.
type Gate struct {
	accepted bool
	done     bool
	onAccept func()
	logger   *zap.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithOnAccept registers the acceptance callback. It runs at most once.
func WithOnAccept(fn func()) Option {
	return func(g *Gate) {
		g.onAccept = fn
	}
}

// WithLogger sets the logger used for rejected accepts.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Gate in the NotAccepted phase.
func New(opts ...Option) *Gate {
	g := &Gate{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ToggleAcceptance sets the acknowledgement flag. Ignored once accepted.
func (g *Gate) ToggleAcceptance(value bool) {
	if g.done {
		return
	}
	g.accepted = value
}

// Accept fires the acceptance event if the acknowledgement is set and
// reports whether it did. Without acknowledgement it is a silent no-op.
func (g *Gate) Accept() bool {
	if g.done {
		return false
	}
	if !g.accepted {
		g.logger.Debug("accept ignored: pledge not acknowledged")
		return false
	}

	g.done = true
	g.logger.Debug("pledge accepted")
	if g.onAccept != nil {
		g.onAccept()
	}
	return true
}

// Accepted returns the acknowledgement flag.
func (g *Gate) Accepted() bool { return g.accepted }

// CanAccept reports whether Accept would fire the event.
func (g *Gate) CanAccept() bool { return g.Phase() == Ready }

// Phase returns the current phase.
func (g *Gate) Phase() Phase {
	switch {
	case g.done:
		return Accepted
	case g.accepted:
		return Ready
	default:
		return NotAccepted
	}
}
