package onboarding

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/onboarding"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
	"github.com/NovaNexusIO/HelpMate/internal/ui/components"
	"github.com/NovaNexusIO/HelpMate/internal/ui/layout"
	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

const maxTextWidth = 52

// Options configures an OnboardingScreen.
type Options struct {
	Slides []onboarding.SlideContent
	Labels content.Labels

	// OnComplete is called once when the flow finishes, by advancing past
	// the last slide or by skipping. Its command is returned from Update.
	OnComplete func() tea.Cmd

	ReducedMotion bool
	Logger        *zap.Logger
}

// OnboardingScreen renders the slide deck and maps keys onto the controller.
type OnboardingScreen struct {
	ctrl       *onboarding.Controller
	labels     content.Labels
	keys       keyMap
	motion     *transition
	onComplete func() tea.Cmd
	pending    []tea.Cmd
	logger     *zap.Logger
}

var (
	_ screen.Screen          = (*OnboardingScreen)(nil)
	_ screen.KeyHintProvider = (*OnboardingScreen)(nil)
	_ screen.StatusProvider  = (*OnboardingScreen)(nil)
)

// New creates an OnboardingScreen positioned on the first slide.
func New(opts Options) (*OnboardingScreen, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &OnboardingScreen{
		labels:     opts.Labels,
		motion:     newTransition(opts.ReducedMotion),
		onComplete: opts.OnComplete,
		logger:     logger,
	}

	ctrl, err := onboarding.New(opts.Slides,
		onboarding.WithLogger(logger),
		onboarding.WithOnComplete(s.completed),
	)
	if err != nil {
		return nil, fmt.Errorf("onboarding screen: %w", err)
	}
	s.ctrl = ctrl
	s.keys = newKeyMap(ctrl.Len())
	return s, nil
}

// completed is the controller's completion callback.
func (s *OnboardingScreen) completed() {
	if s.onComplete != nil {
		s.pending = append(s.pending, s.onComplete())
	}
}

// Controller exposes the underlying state machine for inspection.
func (s *OnboardingScreen) Controller() *onboarding.Controller {
	return s.ctrl
}

func (s *OnboardingScreen) Title() string {
	return ""
}

// Status shows the slide position in the header.
func (s *OnboardingScreen) Status() string {
	return fmt.Sprintf("%d/%d  ", s.ctrl.Index()+1, s.ctrl.Len())
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	return s.keys.hints()
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return s, s.motion.step(msg)

	case tea.KeyPressMsg:
		if s.ctrl.Completed() {
			return s, nil
		}

		var tr onboarding.Transition
		switch {
		case key.Matches(msg, s.keys.Next):
			tr = s.ctrl.Advance()
		case key.Matches(msg, s.keys.Skip):
			tr = s.ctrl.Skip()
		case key.Matches(msg, s.keys.Back):
			if s.ctrl.Index() == 0 {
				return s, nil
			}
			tr = s.ctrl.JumpTo(s.ctrl.Index() - 1)
		case key.Matches(msg, s.keys.Jump):
			n, err := strconv.Atoi(msg.String())
			if err != nil {
				return s, nil
			}
			tr = s.ctrl.JumpTo(n - 1)
		default:
			return s, nil
		}
		return s, s.apply(tr)
	}

	return s, nil
}

// apply starts the cosmetic transition for a move and flushes completion.
func (s *OnboardingScreen) apply(tr onboarding.Transition) tea.Cmd {
	var cmds []tea.Cmd
	if tr.Moved() {
		s.logger.Debug("slide changed",
			zap.Int("from", tr.From),
			zap.Int("to", tr.To),
			zap.Stringer("direction", tr.Direction),
		)
		cmds = append(cmds, s.motion.start(tr.Direction))
	}
	cmds = append(cmds, s.pending...)
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *OnboardingScreen) View(width, height int) string {
	slide := s.ctrl.Current()
	mark := theme.AccentFor(slide.Accent)

	textWidth := width - 8
	if textWidth > maxTextWidth {
		textWidth = maxTextWidth
	}
	if textWidth < 10 {
		textWidth = 10
	}

	icon := lipgloss.NewStyle().
		Foreground(mark.Color).
		Background(theme.BackdropFor(slide.Background)).
		Bold(true).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(mark.Icon)

	title := theme.Title.Width(textWidth).Render(slide.Title)
	desc := theme.Subtitle.Width(textWidth).Render(slide.Description)

	card := lipgloss.JoinVertical(lipgloss.Center, icon, "", title, "", desc)
	card = s.shift(card)

	label := s.labels.Continue
	if s.ctrl.IsLast() {
		label = s.labels.GetStarted
	}
	button := components.NewButton(label, true, nil).View()
	dots := components.NewDots(s.ctrl.Len(), s.ctrl.Index()).View()

	skip := lipgloss.NewStyle().
		Width(width - 2).
		Align(lipgloss.Right).
		Foreground(theme.TextDim).
		Render(s.labels.Skip + " (s)")

	body := lipgloss.JoinVertical(lipgloss.Center, card, "", dots, "", button)
	bodyHeight := height - lipgloss.Height(skip)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	placed := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body)

	return strings.Join([]string{skip, placed}, "\n")
}

// shift offsets the card horizontally by the transition's current column.
func (s *OnboardingScreen) shift(card string) string {
	col := s.motion.column()
	style := lipgloss.NewStyle()
	switch {
	case col > 0:
		style = style.PaddingLeft(2 * col)
	case col < 0:
		style = style.PaddingRight(-2 * col)
	}
	return style.Render(card)
}
