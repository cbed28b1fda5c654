// Package tutor is the AI biology tutor screen: ask a free-form question
// and get a short answer.
package tutor

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const (
	maxQuestionLen = 500
	maxExchanges   = 6
)

// answerMsg carries a reply back to the request that asked for it.
type answerMsg struct {
	RequestID string
	Answer    string
}

type exchange struct {
	question string
	answer   string
}

// TutorScreen is a short question-and-answer log with an input line.
type TutorScreen struct {
	tutor   *quiz.Tutor
	input   components.TextInput
	loading components.Loading
	history []exchange
	pending string // request ID awaiting an answer

	ctx    context.Context
	cancel context.CancelFunc
}

var (
	_ screen.Screen          = (*TutorScreen)(nil)
	_ screen.KeyHintProvider = (*TutorScreen)(nil)
	_ screen.Closer          = (*TutorScreen)(nil)
)

// New creates the screen. A nil tutor answers every question with the
// missing-credential reply.
func New(tutor *quiz.Tutor) *TutorScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &TutorScreen{
		tutor:   tutor,
		input:   components.NewTextInput("What is a codon?", maxQuestionLen, 60),
		loading: components.NewLoading("Thinking..."),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Close abandons a pending question.
func (s *TutorScreen) Close() {
	s.cancel()
}

func (s *TutorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TutorScreen) Title() string {
	return "AI Biology Tutor"
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

// Busy reports whether a question is waiting for its answer.
func (s *TutorScreen) Busy() bool {
	return s.pending != ""
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		if msg.RequestID != s.pending {
			return s, nil
		}
		s.pending = ""
		if n := len(s.history); n > 0 {
			s.history[n-1].answer = msg.Answer
		}
		return s, s.input.SetEnabled(true)

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
		if s.Busy() {
			return s, nil
		}
	}

	var cmds []tea.Cmd
	if s.Busy() {
		var cmd tea.Cmd
		s.loading, cmd = s.loading.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	cmds = append(cmds, cmd)
	return s, tea.Batch(cmds...)
}

// submit sends the typed question. Blank input and a second question
// while one is pending are ignored.
func (s *TutorScreen) submit() tea.Cmd {
	question := strings.TrimSpace(s.input.Value())
	if question == "" || s.Busy() {
		return nil
	}

	s.pending = uuid.NewString()
	s.history = append(s.history, exchange{question: question})
	if len(s.history) > maxExchanges {
		s.history = s.history[len(s.history)-maxExchanges:]
	}
	s.input.Reset()
	s.input.SetEnabled(false)

	id, tutor, ctx := s.pending, s.tutor, s.ctx
	return tea.Batch(s.loading.Tick, func() tea.Msg {
		return answerMsg{RequestID: id, Answer: tutor.Ask(ctx, question)}
	})
}

func (s *TutorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{theme.Title.Width(cw).Render("AI Biology Tutor")}

	if len(s.history) == 0 {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(quiz.TutorPlaceholder))
	}

	question := lipgloss.NewStyle().Width(cw).Foreground(theme.Primary).Bold(true)
	answer := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).PaddingLeft(2)
	for _, ex := range s.history {
		block := question.Render("› " + ex.question)
		if ex.answer != "" {
			block += "\n" + answer.Render(ex.answer)
		}
		sections = append(sections, block)
	}

	if s.Busy() {
		sections = append(sections, s.loading.View())
	}
	sections = append(sections, s.input.View(cw-4))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
