// Package home is the main menu.
package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/router"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/screens/builder"
	foldingscreen "github.com/abhisek/proteinlab/internal/screens/folding"
	"github.com/abhisek/proteinlab/internal/screens/functions"
	"github.com/abhisek/proteinlab/internal/screens/history"
	quizscreen "github.com/abhisek/proteinlab/internal/screens/quiz"
	"github.com/abhisek/proteinlab/internal/screens/synthesis"
	tutorscreen "github.com/abhisek/proteinlab/internal/screens/tutor"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
)

// Deps are the services the menu hands to the screens it opens.
type Deps struct {
	Quiz      *quiz.Service
	Tutor     *quiz.Tutor
	EventRepo store.EventRepo
	Log       zerolog.Logger

	// Provider is the AI provider name, or "" when none is configured.
	Provider   string
	Topic      string
	Difficulty quiz.Difficulty

	// Seed returns the shuffle seed for a new matching game.
	Seed func() uint64
}

type stats struct {
	quizzes     int
	best        int // best score in percent
	lastPerfect bool
}

type statsLoadedMsg struct {
	stats stats
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats stats
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.EventRepo == nil {
		deps.EventRepo = store.NopEventRepo{}
	}
	if deps.Seed == nil {
		deps.Seed = func() uint64 { return uint64(time.Now().UnixNano()) }
	}
	if deps.Difficulty == "" {
		deps.Difficulty = quiz.DifficultyIB
	}

	open := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(factory()) }
	}

	items := []components.MenuItem{
		{
			Label:       "STRUCTURE",
			Description: "Build an amino acid around its alpha carbon.",
			Action:      open(func() screen.Screen { return builder.New() }),
		},
		{
			Label:       "SYNTHESIS",
			Description: "Join two amino acids with a peptide bond.",
			Action:      open(func() screen.Screen { return synthesis.New() }),
		},
		{
			Label:       "FOLDING",
			Description: "Fold a polypeptide from primary to quaternary structure.",
			Action:      open(func() screen.Screen { return foldingscreen.New() }),
		},
		{
			Label:       "FUNCTIONS",
			Description: "Match proteins to the jobs they do.",
			Action:      open(func() screen.Screen { return functions.New(deps.Seed()) }),
		},
		{
			Label:       "QUIZ",
			Description: "AI-powered practice questions.",
			Action: open(func() screen.Screen {
				return quizscreen.New(deps.Quiz, deps.EventRepo, deps.Log, deps.Topic, deps.Difficulty)
			}),
		},
		{
			Label:       "AI TUTOR",
			Description: "Ask a question about proteins.",
			Action:      open(func() screen.Screen { return tutorscreen.New(deps.Tutor) }),
		},
		{
			Label:       "HISTORY",
			Description: "Your finished quizzes.",
			Action:      open(func() screen.Screen { return history.New(deps.EventRepo) }),
		},
		{
			Label:       "EXIT",
			Description: "See you next time.",
			Action:      func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	repo := h.deps.EventRepo
	return func() tea.Msg {
		results, err := repo.QueryQuizResults(context.Background(), store.QueryOpts{})
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{stats: summarize(results)}
	}
}

// summarize folds results (newest first) into the stats bar numbers.
func summarize(results []store.QuizResult) stats {
	st := stats{quizzes: len(results)}
	for i, r := range results {
		if r.Total == 0 {
			continue
		}
		st.best = max(st.best, r.Score*100/r.Total)
		if i == 0 {
			st.lastPerfect = r.Score == r.Total
		}
	}
	return st
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.stats = m.stats
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.deps.Provider == "":
		return MascotAlert
	case h.stats.lastPerfect:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps
	termHeight := height + 8
	compact := termHeight < 36 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, h.deps.Provider, cw, compact))
	if h.deps.Provider == "" {
		sections = append(sections, renderLLMBanner(cw))
	}

	menu := h.menu.View(buttonWidth)
	if current, ok := h.menu.Current(); ok && current.Description != "" {
		menu += "\n" + renderDescription(current.Description, cw)
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(menu))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
