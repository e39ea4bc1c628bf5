package components

import (
	"strings"

	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

// Dots is the slide position indicator: one mark per slide, the active one
// drawn wide.
type Dots struct {
	Total  int
	Active int
}

// NewDots creates a new indicator.
func NewDots(total, active int) Dots {
	return Dots{Total: total, Active: active}
}

// View renders the indicator.
func (d Dots) View() string {
	parts := make([]string, 0, d.Total)
	for i := 0; i < d.Total; i++ {
		if i == d.Active {
			parts = append(parts, theme.DotActive.Render("━━━"))
		} else {
			parts = append(parts, theme.DotInactive.Render("•"))
		}
	}
	return strings.Join(parts, " ")
}
