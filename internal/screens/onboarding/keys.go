package onboarding

import (
	"strconv"

	"charm.land/bubbles/v2/key"

	"github.com/NovaNexusIO/HelpMate/internal/ui/layout"
)

type keyMap struct {
	Next key.Binding
	Back key.Binding
	Skip key.Binding
	Jump key.Binding
}

// newKeyMap binds one digit per slide, so a jump can only name an existing
// slide.
func newKeyMap(slides int) keyMap {
	n := slides
	if n > 9 {
		n = 9
	}
	digits := make([]string, n)
	for i := range digits {
		digits[i] = strconv.Itoa(i + 1)
	}

	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "enter", "space"),
			key.WithHelp("→/Enter", "Continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Back"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Skip"),
		),
		Jump: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp("1-"+strconv.Itoa(n), "Go to slide"),
		),
	}
}

func (k keyMap) hints() []layout.KeyHint {
	bindings := []key.Binding{k.Next, k.Back, k.Jump, k.Skip}
	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
