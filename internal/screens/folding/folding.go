// Package folding is the protein structure screen. It walks a single chain
// through primary, secondary, tertiary and quaternary structure.
package folding

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	fold "github.com/abhisek/proteinlab/internal/folding"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

// stageDoneMsg fires when a stage action's animation time is over.
type stageDoneMsg struct{ ID string }

// frameMsg redraws the canvas while an action is running.
type frameMsg struct{ ID string }

// FoldingScreen hosts a folding.Simulation.
type FoldingScreen struct {
	sim *fold.Simulation
	now func() time.Time
}

var (
	_ screen.Screen          = (*FoldingScreen)(nil)
	_ screen.KeyHintProvider = (*FoldingScreen)(nil)
)

// New creates the screen at the primary stage.
func New() *FoldingScreen {
	return &FoldingScreen{
		sim: fold.NewSimulation(),
		now: time.Now,
	}
}

func (s *FoldingScreen) Init() tea.Cmd {
	return nil
}

func (s *FoldingScreen) Title() string {
	return "Protein Folding"
}

func (s *FoldingScreen) KeyHints() []layout.KeyHint {
	st := s.sim.State()
	hints := []layout.KeyHint{}
	if !st.Animating && !st.Completed[st.Stage] {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: fold.Info(st.Stage).ActionLabel})
	}
	if st.CanAdvance() {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "Next stage"})
	}
	if st.Stage == fold.Secondary && st.Completed[fold.Secondary] {
		hints = append(hints, layout.KeyHint{Key: "v", Description: "Helix/Sheet"})
	}
	if st.AssemblyVisible() && !st.Denatured {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Denature"})
	}
	return append(hints,
		layout.KeyHint{Key: "r", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *FoldingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stageDoneMsg:
		s.sim.Elapse(msg.ID)
		return s, nil

	case frameMsg:
		if p, ok := s.sim.Pending(); ok && p.ID == msg.ID {
			return s, frame(msg.ID)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "space":
			return s, s.trigger()
		case "n", "right":
			s.sim.Advance()
		case "v":
			v := fold.Sheet
			if s.sim.State().Variant == fold.Sheet {
				v = fold.Helix
			}
			s.sim.SelectVariant(v)
		case "d":
			s.sim.Denature()
		case "r":
			s.sim.Reset()
		}
	}
	return s, nil
}

// trigger starts the current stage's action and schedules its completion.
func (s *FoldingScreen) trigger() tea.Cmd {
	p, ok := s.sim.Trigger(s.now())
	if !ok {
		return nil
	}
	id := p.ID
	return tea.Batch(
		tea.Tick(p.Due.Sub(p.Started), func(time.Time) tea.Msg { return stageDoneMsg{ID: id} }),
		frame(id),
	)
}

func frame(id string) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{ID: id} })
}

func (s *FoldingScreen) View(width, height int) string {
	st := s.sim.State()
	info := fold.Info(st.Stage)
	cw := components.ContentWidth(width)

	rows := min(max(height/2-4, 8), 20)
	scene := renderScene(st, s.sim.SynthesisProgress(s.now()), cw-10, rows)

	sections := []string{
		s.renderStages(cw),
		components.ArcadeCard(scene, cw),
		renderLegend(st, cw),
		theme.Title.Width(cw).Render(info.Title) + "\n" +
			theme.Subtitle.Width(cw).Render(info.Subtitle),
		theme.Body.Width(cw).Render(info.Description),
		theme.Hint.Width(cw).Render("Tip: " + info.Tip),
		s.renderAction(cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *FoldingScreen) renderStages(cw int) string {
	st := s.sim.State()
	pills := make([]string, 0, fold.StageCount)
	for _, info := range fold.Catalog() {
		label := strings.TrimSuffix(info.Title, " Structure")
		if st.Completed[info.Stage] {
			label = "✓ " + label
		}
		pills = append(pills, components.Pill(label, info.Stage == st.Stage))
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(pills, " "))
}

func (s *FoldingScreen) renderAction(cw int) string {
	st := s.sim.State()
	var line string
	switch {
	case st.Animating:
		line = theme.Muted.Render("Working...")
	case !st.Completed[st.Stage]:
		line = components.ArcadeButton(fold.Info(st.Stage).ActionLabel, true, 30)
	case st.CanAdvance():
		line = theme.Correct.Render(fmt.Sprintf("Stage complete. Press n for %s structure.", st.Stage+1))
	case st.Denatured:
		line = theme.Incorrect.Render("Denatured: subunits separated and heme groups lost. Press r to start over.")
	default:
		line = theme.Correct.Render("Functional hemoglobin assembled. Press d to denature it.")
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, line)
}

func renderLegend(st fold.State, cw int) string {
	swatch := func(label string, fg color.Color) string {
		return lipgloss.NewStyle().Foreground(fg).Render("● " + label)
	}
	var items []string
	if st.AssemblyVisible() {
		items = []string{
			swatch("α globin", theme.AlphaGlobin),
			swatch("β globin", theme.BetaGlobin),
			swatch("heme", theme.Heme),
		}
	} else {
		items = []string{
			swatch("hydrophobic", theme.Hydrophobic),
			swatch("cysteine", theme.Cysteine),
			swatch("acidic (-)", theme.Acidic),
			swatch("basic (+)", theme.Basic),
			swatch("polar", theme.Polar),
		}
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(items, "  "))
}
