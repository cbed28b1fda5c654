// Package synthesis is the peptide bond screen: remove water from two amino
// acids to join them.
package synthesis

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/peptide"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const intro = "Polypeptides are formed by linking amino acids together via peptide bonds. Pick the correct atoms to perform a condensation reaction (dehydration synthesis)."

// SynthesisScreen hosts a peptide.Stepper.
type SynthesisScreen struct {
	stepper peptide.Stepper
	cursor  int
	toast   components.Toast
}

var (
	_ screen.Screen          = (*SynthesisScreen)(nil)
	_ screen.KeyHintProvider = (*SynthesisScreen)(nil)
)

// New creates the screen at the start of the reaction.
func New() *SynthesisScreen {
	return &SynthesisScreen{
		stepper: peptide.New(),
		toast:   components.NewToast(),
	}
}

func (s *SynthesisScreen) Init() tea.Cmd {
	return nil
}

func (s *SynthesisScreen) Title() string {
	return "Peptide Bond Synthesis"
}

func (s *SynthesisScreen) KeyHints() []layout.KeyHint {
	switch s.stepper.Step() {
	case peptide.StepHydrogen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Form Peptide Bond"},
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	case peptide.StepBonded:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Replay Reaction"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose atom"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SynthesisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.toast.Update(msg) {
		return s, nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(peptide.Targets)-1 {
			s.cursor++
		}
	case "r":
		s.restart()
	case "enter", "space":
		return s, s.activate()
	}
	return s, nil
}

func (s *SynthesisScreen) activate() tea.Cmd {
	switch s.stepper.Step() {
	case peptide.StepHydrogen:
		s.stepper, _ = s.stepper.FormBond()
		s.toast.Clear()
		return nil
	case peptide.StepBonded:
		s.restart()
		return nil
	}

	next, out := s.stepper.Select(peptide.Targets[s.cursor])
	s.stepper = next
	if out.Hint != "" {
		return s.toast.Show(out.Hint)
	}
	if out.Accepted {
		s.toast.Clear()
	}
	return nil
}

func (s *SynthesisScreen) restart() {
	s.stepper = s.stepper.Reset()
	s.cursor = 0
	s.toast.Clear()
}

func (s *SynthesisScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	prompt := theme.Body
	if s.stepper.Done() {
		prompt = theme.Correct
	}

	sections := []string{
		theme.Title.Width(cw).Render("Peptide Bond Synthesis"),
		theme.Subtitle.Width(cw).Render(intro),
		components.ArcadeCard(s.renderMolecules(), cw),
		prompt.Width(cw).Align(lipgloss.Center).Render(s.stepper.Prompt()),
	}

	switch s.stepper.Step() {
	case peptide.StepHydrogen:
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			components.ArcadeButton("Form Peptide Bond", true, 26)))
	case peptide.StepBonded:
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			components.ArcadeButton("Replay Reaction", true, 26)))
	default:
		sections = append(sections, s.renderTargets(cw))
	}
	sections = append(sections, s.toast.View(cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *SynthesisScreen) renderTargets(cw int) string {
	lines := make([]string, 0, len(peptide.Targets))
	for i, t := range peptide.Targets {
		if i == s.cursor {
			lines = append(lines, theme.Selected.Render("▸ "+t.String()))
			continue
		}
		lines = append(lines, theme.Unselected.Render("  "+t.String()))
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(lines, "\n"))
}

// renderMolecules draws both amino acids, or the dipeptide and released
// water once bonded.
func (s *SynthesisScreen) renderMolecules() string {
	atom := lipgloss.NewStyle().Foreground(theme.Text).Render
	dim := theme.Muted.Render
	rg := lipgloss.NewStyle().Foreground(theme.Secondary).Render
	leaving := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render
	water := lipgloss.NewStyle().Foreground(theme.HydrogenBond).Bold(true).Render
	peptideBond := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render

	if s.stepper.Done() {
		return strings.Join([]string{
			atom("   H   H   O   H   H   O"),
			dim("    ╲  │   ║   │   │   ║"),
			atom("     N─C───C") + peptideBond("───") + atom("N───C───C─OH") + "     " + water("+ H₂O"),
			dim("    ╱  │           │"),
			atom("   H  ") + rg("R₁") + atom("          ") + rg("R₂"),
		}, "\n")
	}

	oh := atom("OH")
	if s.stepper.Step() >= peptide.StepHydroxyl {
		oh = leaving("OH")
	}
	h := atom("H")
	if s.stepper.Step() >= peptide.StepHydrogen {
		h = leaving("H")
	}

	return strings.Join([]string{
		atom("   H   H   O          ") + h + atom("   H   O"),
		dim("    ╲  │   ║           ╲  │   ║"),
		atom("     N─C───C─") + oh + atom("        N─C───C─OH"),
		dim("    ╱  │               ╱  │"),
		atom("   H  ") + rg("R₁") + atom("              H  ") + rg("R₂"),
	}, "\n")
}
