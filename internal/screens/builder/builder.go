// Package builder is the amino acid assembly screen: pick a group, then the
// position around the alpha carbon it bonds to.
package builder

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/aminoacid"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const (
	instructions = "Pick a component below, then the correct position around the central Carbon atom. Identify the Amino and Carboxyl groups that are crucial for bonding."
	doneTitle    = "Excellent! Structure Assembled."
	doneBody     = "You have built an amino acid. Notice how the Amine H and Carboxyl OH are positioned? These are the parts that will react to form a peptide bond and release water!"
)

// focus is which half of the screen takes arrow keys.
type focus int

const (
	focusParts focus = iota
	focusZones
)

// BuilderScreen hosts an aminoacid.Builder.
type BuilderScreen struct {
	builder aminoacid.Builder
	cursor  int
	focus   focus
	toast   components.Toast
}

var (
	_ screen.Screen          = (*BuilderScreen)(nil)
	_ screen.KeyHintProvider = (*BuilderScreen)(nil)
	_ screen.EscapeHandler   = (*BuilderScreen)(nil)
)

// New creates an empty builder.
func New() *BuilderScreen {
	return &BuilderScreen{toast: components.NewToast()}
}

func (s *BuilderScreen) Init() tea.Cmd {
	return nil
}

func (s *BuilderScreen) Title() string {
	return "Build an Amino Acid"
}

// HandlesEscape reports whether Esc drops the part in hand instead of
// leaving the screen.
func (s *BuilderScreen) HandlesEscape() bool {
	return s.focus == focusZones
}

func (s *BuilderScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.builder.Complete():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Build Another"},
			{Key: "Esc", Description: "Back"},
		}
	case s.focus == focusZones:
		return []layout.KeyHint{
			{Key: "↑→↓←", Description: "Place"},
			{Key: "Esc", Description: "Put down"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Pick up"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *BuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.toast.Update(msg) {
		return s, nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.builder.Complete() {
		if key.String() == "enter" || key.String() == "r" {
			s.reset()
		}
		return s, nil
	}

	if s.focus == focusZones {
		return s, s.updateZones(key.String())
	}
	return s, s.updateParts(key.String())
}

func (s *BuilderScreen) updateParts(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(aminoacid.Parts)-1 {
			s.cursor++
		}
	case "enter", "space":
		next, ok := s.builder.Select(aminoacid.Parts[s.cursor].ID)
		if !ok {
			return nil
		}
		s.builder = next
		s.focus = focusZones
		s.toast.Clear()
	case "r":
		s.reset()
	}
	return nil
}

func (s *BuilderScreen) updateZones(key string) tea.Cmd {
	var zone aminoacid.Zone
	switch key {
	case "up", "k", "w":
		zone = aminoacid.Top
	case "right", "l", "d":
		zone = aminoacid.Right
	case "down", "j", "s":
		zone = aminoacid.Bottom
	case "left", "h", "a":
		zone = aminoacid.Left
	case "esc":
		s.focus = focusParts
		return nil
	default:
		return nil
	}

	next, hint := s.builder.Place(zone)
	s.builder = next
	if hint != "" {
		return s.toast.Show(hint)
	}
	s.focus = focusParts
	s.cursor = s.nextFree()
	return nil
}

// nextFree moves the cursor to the first part still to be placed.
func (s *BuilderScreen) nextFree() int {
	for i, p := range aminoacid.Parts {
		if !s.builder.IsPlaced(p.ID) {
			return i
		}
	}
	return s.cursor
}

func (s *BuilderScreen) reset() {
	s.builder = s.builder.Reset()
	s.cursor = 0
	s.focus = focusParts
	s.toast.Clear()
}

func (s *BuilderScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Width(cw).Render("Build an Amino Acid"),
		theme.Subtitle.Width(cw).Render(instructions),
		components.ArcadeCard(s.renderMolecule(), cw),
	}

	if s.builder.Complete() {
		sections = append(sections,
			theme.Correct.Width(cw).Align(lipgloss.Center).Render(doneTitle),
			theme.Body.Width(cw).Align(lipgloss.Center).Render(doneBody),
			lipgloss.PlaceHorizontal(cw, lipgloss.Center,
				components.ArcadeButton("Build Another", true, 22)),
		)
	} else {
		sections = append(sections, s.renderParts(cw))
	}
	sections = append(sections, s.toast.View(cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderMolecule draws the alpha carbon with its four zones.
func (s *BuilderScreen) renderMolecule() string {
	slot := func(z aminoacid.Zone) string {
		if id := s.builder.Placed(z); id != "" {
			return lipgloss.NewStyle().Foreground(partColor(id)).Bold(true).Render(shortLabel(id))
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == focusZones {
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		}
		return style.Render("[ ? ]")
	}
	carbon := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("C")
	bond := theme.Muted.Render

	left := lipgloss.PlaceHorizontal(12, lipgloss.Right, slot(aminoacid.Left))
	right := lipgloss.PlaceHorizontal(12, lipgloss.Left, slot(aminoacid.Right))
	mid := left + bond(" ── ") + carbon + bond(" ── ") + right
	column := func(s string) string { return lipgloss.PlaceHorizontal(lipgloss.Width(mid), lipgloss.Center, s) }

	return strings.Join([]string{
		column(slot(aminoacid.Top)),
		column(bond("│")),
		mid,
		column(bond("│")),
		column(slot(aminoacid.Bottom)),
	}, "\n")
}

func (s *BuilderScreen) renderParts(cw int) string {
	held, _ := s.builder.Selected()
	lines := make([]string, 0, len(aminoacid.Parts))
	for i, p := range aminoacid.Parts {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case s.builder.IsPlaced(p.ID):
			style = style.Foreground(theme.TextDim).Strikethrough(true)
			prefix = "✓ "
		case p.ID == held:
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
			prefix = "✋"
		case i == s.cursor && s.focus == focusParts:
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		lines = append(lines, style.Render(prefix+p.Label))
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(lines, "\n"))
}

func shortLabel(id string) string {
	switch id {
	case "amine":
		return "H₂N"
	case "carboxyl":
		return "COOH"
	case "hydrogen":
		return "H"
	case "r-group":
		return "R"
	default:
		return "?"
	}
}

func partColor(id string) color.Color {
	switch id {
	case "amine":
		return theme.Basic
	case "carboxyl":
		return theme.Acidic
	case "r-group":
		return theme.Secondary
	default:
		return theme.Text
	}
}
