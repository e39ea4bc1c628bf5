package pledge

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/NovaNexusIO/HelpMate/internal/consent"
	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
	"github.com/NovaNexusIO/HelpMate/internal/ui/components"
	"github.com/NovaNexusIO/HelpMate/internal/ui/layout"
	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

const cardWidth = 60

type keyMap struct {
	Toggle key.Binding
	Accept key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("space", "x"),
		key.WithHelp("Space", "Agree"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter", "a"),
		key.WithHelp("Enter", "Accept"),
	),
}

// PledgeScreen shows the community pledge and the acceptance gate.
type PledgeScreen struct {
	gate     *consent.Gate
	text     content.Pledge
	checkbox components.Checkbox
	onAccept func() tea.Cmd
	pending  []tea.Cmd
}

var (
	_ screen.Screen          = (*PledgeScreen)(nil)
	_ screen.KeyHintProvider = (*PledgeScreen)(nil)
)

// New creates a PledgeScreen. onAccept is called once, when the user has
// ticked the agreement and accepts.
func New(text content.Pledge, onAccept func() tea.Cmd, logger *zap.Logger) *PledgeScreen {
	p := &PledgeScreen{
		text:     text,
		onAccept: onAccept,
	}
	p.gate = consent.New(
		consent.WithLogger(logger),
		consent.WithOnAccept(p.accepted),
	)
	p.checkbox = components.NewCheckbox(text.Agreement, func(checked bool) tea.Cmd {
		p.gate.ToggleAcceptance(checked)
		return nil
	})
	return p
}

func (p *PledgeScreen) accepted() {
	if p.onAccept != nil {
		p.pending = append(p.pending, p.onAccept())
	}
}

// Gate exposes the consent state for inspection.
func (p *PledgeScreen) Gate() *consent.Gate {
	return p.gate
}

func (p *PledgeScreen) Title() string {
	return p.text.Title
}

func (p *PledgeScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 3)
	for _, b := range []key.Binding{keys.Toggle, keys.Accept} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (p *PledgeScreen) Init() tea.Cmd {
	return nil
}

func (p *PledgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || p.gate.Phase() == consent.Accepted {
		return p, nil
	}

	switch {
	case key.Matches(kmsg, keys.Toggle):
		var cmd tea.Cmd
		p.checkbox, cmd = p.checkbox.Update(kmsg)
		return p, cmd

	case key.Matches(kmsg, keys.Accept):
		// The gate decides; the dimmed button is only a hint.
		p.gate.Accept()
		cmds := p.pending
		p.pending = nil
		return p, tea.Batch(cmds...)
	}

	return p, nil
}

func (p *PledgeScreen) View(width, height int) string {
	w := cardWidth
	if width-4 < w {
		w = width - 4
	}
	if w < 20 {
		w = 20
	}

	shield := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 2).
		Render(theme.AccentFor("shield").Icon)

	header := lipgloss.JoinVertical(lipgloss.Center,
		shield,
		"",
		theme.Title.Width(w).Render(p.text.Title),
		theme.Subtitle.Width(w).Render(p.text.Subtitle),
	)

	bullet := lipgloss.NewStyle().Foreground(theme.Primary).Render("•")
	lines := []string{theme.Body.Bold(true).Render(p.text.Heading), ""}
	for _, pt := range p.text.Points {
		lines = append(lines, bullet+" "+theme.Body.Width(w-8).Render(pt))
	}
	if !layout.IsCompactHeight(height) {
		lines = append(lines, "", theme.Hint.Width(w-6).Render("ⓘ "+p.text.Warning))
	}
	card := theme.Card.Width(w).Render(strings.Join(lines, "\n"))

	button := components.NewButton(p.text.Accept, p.gate.CanAccept(), nil).View()

	body := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		card,
		"",
		p.checkbox.View(),
		"",
		button,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
