package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // default
	MascotCelebrating                      // last quiz was a perfect score
	MascotAlert                            // no AI provider configured
)

const mascotIdle = `╭─────╮
│ ● ● │
│  ◡  │
│ NH₂ │
╰─┬─┬─╯
  R COOH`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ▿  │
│ NH₂ │
╰─┬─┬─╯
  R COOH`

const mascotAlert = `╭─────╮
│ ● ● │ !
│  ▵  │
│ NH₂ │
╰─┬─┬─╯
  R COOH`

// RenderMascot returns the amino acid mascot for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Secondary

	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
