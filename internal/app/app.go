package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/i18n"
	"github.com/NovaNexusIO/HelpMate/internal/router"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
	"github.com/NovaNexusIO/HelpMate/internal/screens/home"
	onboardingscreen "github.com/NovaNexusIO/HelpMate/internal/screens/onboarding"
	"github.com/NovaNexusIO/HelpMate/internal/screens/pledge"
	"github.com/NovaNexusIO/HelpMate/internal/screens/welcome"
	"github.com/NovaNexusIO/HelpMate/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Translator    i18n.Translator
	Logger        *zap.Logger
	ReducedMotion bool

	// SkipSplash starts directly on the first slide.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model. It runs the first-run flow as a
// sequence of screens: splash, onboarding, pledge, then home.
type AppModel struct {
	router *router.Router
	opts   Options
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel positioned at the start of the flow.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Translator == nil {
		return AppModel{}, fmt.Errorf("app: translator is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("flow_id", uuid.NewString()))

	m := AppModel{opts: opts, logger: logger}

	slides, err := m.onboardingScreen()
	if err != nil {
		return AppModel{}, err
	}
	first := slides
	if !opts.SkipSplash {
		first = welcome.New(content.SplashText(opts.Translator), func() screen.Screen {
			return slides
		}, opts.ReducedMotion)
	}

	m.router = router.New(first, logger)
	logger.Info("first-run flow started")
	return m, nil
}

func (m AppModel) onboardingScreen() (screen.Screen, error) {
	tr := m.opts.Translator
	return onboardingscreen.New(onboardingscreen.Options{
		Slides: content.Slides(tr),
		Labels: content.OnboardingLabels(tr),
		OnComplete: func() tea.Cmd {
			m.logger.Info("onboarding completed")
			next := m.pledgeScreen()
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		},
		ReducedMotion: m.opts.ReducedMotion,
		Logger:        m.logger,
	})
}

func (m AppModel) pledgeScreen() screen.Screen {
	tr := m.opts.Translator
	return pledge.New(content.PledgeText(tr), func() tea.Cmd {
		m.logger.Info("pledge accepted")
		next := home.New(content.HomeText(tr), true)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}, m.logger)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("quit", zap.String("screen", m.router.Active().Title()))
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	body := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
