package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  ██████╗ ████████╗███████╗██╗███╗   ██╗
 ██╔══██╗██╔══██╗██╔═══██╗╚══██╔══╝██╔════╝██║████╗  ██║
 ██████╔╝██████╔╝██║   ██║   ██║   █████╗  ██║██╔██╗ ██║
 ██╔═══╝ ██╔══██╗██║   ██║   ██║   ██╔══╝  ██║██║╚██╗██║
 ██║     ██║  ██║╚██████╔╝   ██║   ███████╗██║██║ ╚████║
 ╚═╝     ╚═╝  ╚═╝ ╚═════╝    ╚═╝   ╚══════╝╚═╝╚═╝  ╚═══╝
                          L  A  B`

const bannerCompact = "P R O T E I N L A B"

// RenderBanner returns the PROTEINLAB banner styled in the primary color.
// Terminals narrower than 60 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
