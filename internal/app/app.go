// Package app is the root Bubble Tea model: a screen stack framed by a
// header and a key-hint footer.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/router"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/screens/home"
	"github.com/abhisek/proteinlab/internal/screens/welcome"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/abhisek/proteinlab/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Quiz      *quiz.Service
	Tutor     *quiz.Tutor
	EventRepo store.EventRepo
	Log       zerolog.Logger

	// ProviderName is shown in the header; "" means offline.
	ProviderName string
	Topic        string
	Difficulty   quiz.Difficulty

	// SkipWelcome opens the home screen directly.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	newHome := func() screen.Screen {
		return home.New(home.Deps{
			Quiz:       opts.Quiz,
			Tutor:      opts.Tutor,
			EventRepo:  opts.EventRepo,
			Log:        opts.Log,
			Provider:   opts.ProviderName,
			Topic:      opts.Topic,
			Difficulty: opts.Difficulty,
		})
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}

	status := "AI: offline"
	if opts.ProviderName != "" {
		status = "AI: " + opts.ProviderName
	}

	return AppModel{
		router: router.New(first),
		status: status,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
