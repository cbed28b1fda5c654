// Package functions is the protein function gallery: match each protein to
// what it does.
package functions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/matching"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const (
	instructions = "Select a protein on the left, then its matching function/description on the right."
	doneBody     = "You've correctly identified the functions of key biological proteins."
)

type column int

const (
	proteinColumn column = iota
	definitionColumn
)

// FunctionsScreen hosts a matching.Game.
type FunctionsScreen struct {
	game   matching.Game
	col    column
	cursor [2]int
	toast  components.Toast
}

var (
	_ screen.Screen          = (*FunctionsScreen)(nil)
	_ screen.KeyHintProvider = (*FunctionsScreen)(nil)
)

// New creates a game whose definitions are shuffled with seed.
func New(seed uint64) *FunctionsScreen {
	return &FunctionsScreen{
		game:  matching.NewGame(seed),
		toast: components.NewToast(),
	}
}

func (s *FunctionsScreen) Init() tea.Cmd {
	return nil
}

func (s *FunctionsScreen) Title() string {
	return "Protein Functions Gallery"
}

func (s *FunctionsScreen) KeyHints() []layout.KeyHint {
	if s.game.Complete() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reset Module"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Column"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FunctionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.toast.Update(msg) {
		return s, nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.game.Complete() {
		if key.String() == "enter" || key.String() == "r" {
			s.reset()
		}
		return s, nil
	}

	n := len(matching.Catalog())
	switch key.String() {
	case "up", "k":
		if s.cursor[s.col] > 0 {
			s.cursor[s.col]--
		}
	case "down", "j":
		if s.cursor[s.col] < n-1 {
			s.cursor[s.col]++
		}
	case "left", "h":
		s.col = proteinColumn
	case "right", "l":
		s.col = definitionColumn
	case "tab":
		s.col = 1 - s.col
	case "r":
		s.reset()
	case "enter", "space":
		return s, s.pick()
	}
	return s, nil
}

func (s *FunctionsScreen) pick() tea.Cmd {
	if s.col == proteinColumn {
		p := s.game.Proteins()[s.cursor[proteinColumn]]
		next, ok := s.game.SelectProtein(p.ID)
		if ok {
			s.game = next
			s.col = definitionColumn
		}
		return nil
	}

	d := s.game.Definitions()[s.cursor[definitionColumn]]
	next, out := s.game.SelectDefinition(d.ID)
	s.game = next
	switch out {
	case matching.Mismatch:
		return s.toast.Show(matching.MismatchNotice)
	case matching.Matched:
		s.toast.Clear()
		s.col = proteinColumn
	}
	return nil
}

func (s *FunctionsScreen) reset() {
	s.game = s.game.Reset()
	s.col = proteinColumn
	s.cursor = [2]int{}
	s.toast.Clear()
}

func (s *FunctionsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.game.Complete() {
		content := strings.Join([]string{
			theme.Correct.Width(cw).Align(lipgloss.Center).Render(matching.CompleteNotice),
			theme.Body.Width(cw).Align(lipgloss.Center).Render(doneBody),
			lipgloss.PlaceHorizontal(cw, lipgloss.Center,
				components.ArcadeButton("Reset Module", true, 22)),
		}, "\n\n")
		return components.CabinetFrame(content, width, height)
	}

	leftW := cw / 3
	rightW := cw - leftW - 2

	total := len(matching.Catalog())
	progress := components.ProgressBar(
		fmt.Sprintf("%d / %d matched", s.game.MatchedCount(), total),
		s.game.MatchedCount(), total, min(cw, 50))

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderProteins(leftW),
		"  ",
		s.renderDefinitions(rightW),
	)

	sections := []string{
		theme.Title.Width(cw).Render("Protein Functions Gallery"),
		theme.Subtitle.Width(cw).Render(instructions),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, progress),
		columns,
		s.toast.View(cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *FunctionsScreen) renderProteins(w int) string {
	selected, _ := s.game.Selected()
	lines := make([]string, 0, len(s.game.Proteins()))
	for i, p := range s.game.Proteins() {
		style := lipgloss.NewStyle().Width(w).Foreground(theme.Text)
		label := "  " + p.Name
		switch {
		case s.game.IsMatched(p.ID):
			style = style.Foreground(theme.Success)
			label = "✓ " + p.Name
		case p.ID == selected:
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
			label = "● " + p.Name
		case s.col == proteinColumn && i == s.cursor[proteinColumn]:
			style = style.Foreground(theme.Primary).Bold(true)
			label = "▸ " + p.Name
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (s *FunctionsScreen) renderDefinitions(w int) string {
	lines := make([]string, 0, len(s.game.Definitions()))
	for i, d := range s.game.Definitions() {
		style := lipgloss.NewStyle().Width(w).Foreground(theme.TextDim)
		prefix := "  "
		switch {
		case s.game.IsMatched(d.ID):
			style = style.Foreground(theme.Success).Faint(true)
			prefix = "✓ "
		case s.col == definitionColumn && i == s.cursor[definitionColumn]:
			style = style.Foreground(theme.Text).Bold(true)
			prefix = "▸ "
		}
		lines = append(lines, style.Render(prefix+d.Description))
	}
	return strings.Join(lines, "\n")
}
