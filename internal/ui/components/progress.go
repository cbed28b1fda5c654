package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

// ProgressBar renders "label  ████░░░░" filled to done/total, fitting width.
// A zero total draws an empty bar.
func ProgressBar(label string, done, total, width int) string {
	var b strings.Builder
	if label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(label))
		b.WriteString("  ")
	}

	bar := max(width-lipgloss.Width(b.String()), 4)
	filled := 0
	if total > 0 {
		filled = min(max(bar*done/total, 0), bar)
	}

	b.WriteString(lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", bar-filled)))
	return b.String()
}
