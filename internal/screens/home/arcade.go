package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const arcadeTitleFull = `╔═╗╦═╗╔═╗╔╦╗╔═╗╦╔╗╔  ╦  ╔═╗╔╗
╠═╝╠╦╝║ ║ ║ ║╣ ║║║║  ║  ╠═╣╠╩╗
╩  ╩╚═╚═╝ ╩ ╚═╝╩╝╚╝  ╩═╝╩ ╩╚═╝`

const arcadeTitleCompact = "P · R · O · T · E · I · N · L · A · B"

const tagline = "Master the Logic of Life"

const subtitle = "A comprehensive, interactive guide to proteins for IB and AP Biology students. Explore structure, synthesis, and function through simulation."

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art))
	if compact {
		return title
	}
	return title + "\n\n" +
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Bold(true).Foreground(theme.Text).Render(tagline) + "\n" +
		theme.Subtitle.Width(cw).Render(subtitle)
}

// renderStatsBar shows quiz totals and the AI provider in a bordered box.
func renderStatsBar(st stats, provider string, cw int, compact bool) string {
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	aiStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	ai := aiStyle.Render("⚡ " + provider)
	if provider == "" {
		ai = dimStyle.Render("⚡ OFFLINE")
	}

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			quizStyle.Render(fmt.Sprintf("★%d", st.quizzes)),
			bestStyle.Render(fmt.Sprintf("◆%d%%", st.best)),
			ai,
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			quizStyle.Render(fmt.Sprintf("★ %d QUIZZES", st.quizzes)),
			bestStyle.Render(fmt.Sprintf("◆ BEST %d%%", st.best)),
			ai,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// renderLLMBanner warns that quizzes use the built-in set and the tutor is
// offline.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No AI key set: quizzes use built-in questions (see proteinlab --help)")
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderDescription shows what the highlighted menu entry does.
func renderDescription(text string, cw int) string {
	return theme.Hint.Width(cw).Align(lipgloss.Center).Render(text)
}
