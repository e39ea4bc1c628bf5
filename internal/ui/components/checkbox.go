package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

// Checkbox is a labelled toggle. OnChange receives the new value.
type Checkbox struct {
	Label    string
	Checked  bool
	OnChange func(checked bool) tea.Cmd
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string, onChange func(bool) tea.Cmd) Checkbox {
	return Checkbox{
		Label:    label,
		OnChange: onChange,
	}
}

// Update toggles on space or x.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "space", "x":
		c.Checked = !c.Checked
		if c.OnChange != nil {
			return c, c.OnChange(c.Checked)
		}
	}
	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View() string {
	box := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[ ]")
	if c.Checked {
		box = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("[✓]")
	}
	return box + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(c.Label)
}
