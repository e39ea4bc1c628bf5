package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/router"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
	"github.com/NovaNexusIO/HelpMate/internal/screens/placeholder"
	"github.com/NovaNexusIO/HelpMate/internal/ui/components"
	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

// HomeScreen is the main application screen, reached once the pledge is
// accepted.
type HomeScreen struct {
	text   content.Home
	menu   components.Menu
	mascot MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A newcomer sees the celebrating mascot.
func New(text content.Home, newcomer bool) *HomeScreen {
	h := &HomeScreen{
		text:   text,
		mascot: MascotIdle,
	}
	if newcomer {
		h.mascot = MascotCelebrating
	}

	comingSoon := func(title string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New(title, text.ComingSoon)}
			}
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: text.AskForHelp, Action: comingSoon(text.AskForHelp)},
		{Label: text.OfferHelp, Action: comingSoon(text.OfferHelp)},
		{Label: text.Quit, Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		RenderMascot(h.mascot),
		"",
		theme.Title.Render(h.text.Title),
		theme.Subtitle.Render(h.text.Description),
		"",
		h.menu.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (h *HomeScreen) Title() string {
	return h.text.Title
}
