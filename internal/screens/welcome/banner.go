package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/NovaNexusIO/HelpMate/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███████╗██╗     ██████╗ ███╗   ███╗ █████╗ ████████╗███████╗
 ██║  ██║██╔════╝██║     ██╔══██╗████╗ ████║██╔══██╗╚══██╔══╝██╔════╝
 ███████║█████╗  ██║     ██████╔╝██╔████╔██║███████║   ██║   █████╗
 ██╔══██║██╔══╝  ██║     ██╔═══╝ ██║╚██╔╝██║██╔══██║   ██║   ██╔══╝
 ██║  ██║███████╗███████╗██║     ██║ ╚═╝ ██║██║  ██║   ██║   ███████╗
 ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝     ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝`

const bannerCompact = "H E L P M A T E"

// bannerWidth is the widest line of bannerArt plus margin.
const bannerWidth = 72

// RenderBanner returns the HelpMate logo styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
