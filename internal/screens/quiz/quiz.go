// Package quiz is the practice quiz screen. Questions are generated in the
// background and fall back to a built-in set when generation fails.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	q "github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/screen"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/abhisek/proteinlab/internal/ui/components"
	"github.com/abhisek/proteinlab/internal/ui/layout"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

const loadingCaption = "Generating smart questions with AI..."

// questionsLoadedMsg carries a fetched batch back to the session that
// asked for it.
type questionsLoadedMsg struct {
	SessionID string
	Batch     q.Batch
}

// resultSavedMsg reports the outcome of recording a finished quiz.
type resultSavedMsg struct {
	SessionID string
	Err       error
}

// QuizScreen runs one quiz.Session at a time.
type QuizScreen struct {
	service   *q.Service
	eventRepo store.EventRepo
	log       zerolog.Logger

	session q.Session
	choice  components.MultiChoice
	loading components.Loading

	// ctx is cancelled when the screen closes, abandoning generation.
	ctx    context.Context
	cancel context.CancelFunc
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.Closer          = (*QuizScreen)(nil)
)

// New creates a quiz on topic. A nil service serves the built-in set and a
// nil repo skips recording results.
func New(service *q.Service, eventRepo store.EventRepo, log zerolog.Logger, topic string, d q.Difficulty) *QuizScreen {
	if strings.TrimSpace(topic) == "" {
		topic = q.DefaultTopic
	}
	if eventRepo == nil {
		eventRepo = store.NopEventRepo{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QuizScreen{
		service:   service,
		eventRepo: eventRepo,
		log:       log,
		session:   q.NewSession(topic, d),
		loading:   components.NewLoading(loadingCaption),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Close abandons any generation still in flight.
func (s *QuizScreen) Close() {
	s.cancel()
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.loading.Tick, s.fetch())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case q.PhaseActive:
		if s.session.Answered() {
			label := "Next Question"
			if s.session.IsLast() {
				label = "Finish Quiz"
			}
			return []layout.KeyHint{
				{Key: "Enter", Description: label},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case q.PhaseFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

// fetch loads questions for the current session in the background.
func (s *QuizScreen) fetch() tea.Cmd {
	id := s.session.ID()
	topic, d := s.session.Topic(), s.session.Difficulty()
	svc, ctx := s.service, s.ctx
	return func() tea.Msg {
		return questionsLoadedMsg{
			SessionID: id,
			Batch:     svc.FetchQuestions(ctx, topic, d),
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.SessionID != s.session.ID() {
			return s, nil
		}
		next, ok := s.session.Load(msg.Batch)
		if ok {
			s.session = next
			s.resetChoice()
		}
		return s, nil

	case resultSavedMsg:
		// Failures are logged by record; the learner sees the score either way.
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.session.Phase() == q.PhaseLoading {
		var cmd tea.Cmd
		s.loading, cmd = s.loading.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch s.session.Phase() {
	case q.PhaseActive:
		if s.session.Answered() {
			if msg.String() == "enter" || msg.String() == "space" {
				return s.advance()
			}
			return nil
		}
		if msg.String() == "enter" {
			s.answer(s.choice.Selected)
			return nil
		}
		if i, ok := components.OptionIndex(msg.String(), len(s.choice.Options)); ok {
			s.answer(i)
			return nil
		}
		s.choice = s.choice.Update(msg)

	case q.PhaseFinished:
		if msg.String() == "enter" || msg.String() == "r" {
			s.session = s.session.Restart()
			return tea.Batch(s.loading.Tick, s.fetch())
		}
	}
	return nil
}

func (s *QuizScreen) answer(i int) {
	next, ok := s.session.Answer(i)
	if !ok {
		return
	}
	s.session = next
	s.choice = s.choice.Reveal(i)
}

func (s *QuizScreen) advance() tea.Cmd {
	next, ok := s.session.Advance()
	if !ok {
		return nil
	}
	s.session = next
	if s.session.Phase() == q.PhaseFinished {
		return s.record()
	}
	s.resetChoice()
	return nil
}

func (s *QuizScreen) resetChoice() {
	cur, ok := s.session.Current()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(cur.Options, cur.CorrectAnswer)
}

// record stores the finished quiz in the audit log.
func (s *QuizScreen) record() tea.Cmd {
	data := store.QuizResultData{
		SessionID:  s.session.ID(),
		Topic:      s.session.Topic(),
		Difficulty: string(s.session.Difficulty()),
		Score:      s.session.Score(),
		Total:      s.session.Total(),
		Source:     string(s.session.Source()),
	}
	repo, log := s.eventRepo, s.log
	return func() tea.Msg {
		err := repo.AppendQuizResult(context.Background(), data)
		if err != nil {
			log.Warn().Err(err).Str("session_id", data.SessionID).Msg("failed to record quiz result")
		}
		return resultSavedMsg{SessionID: data.SessionID, Err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	switch s.session.Phase() {
	case q.PhaseLoading:
		content = s.loading.View()
	case q.PhaseFinished:
		content = s.renderFinished(cw)
	default:
		content = s.renderQuestion(cw)
	}
	return components.CabinetFrame(content, width, height)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	cur, _ := s.session.Current()

	counter := theme.Muted.Render(fmt.Sprintf("QUESTION %d/%d", s.session.Index()+1, s.session.Total()))
	topic := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.session.Topic())
	gap := max(cw-lipgloss.Width(counter)-lipgloss.Width(topic), 1)

	sections := []string{
		counter + strings.Repeat(" ", gap) + topic,
		lipgloss.NewStyle().Width(cw).Bold(true).Foreground(theme.Text).Render(cur.Question),
		s.choice.View(cw),
	}

	if s.session.Answered() {
		label := "Next Question"
		if s.session.IsLast() {
			label = "Finish Quiz"
		}
		explanation := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Explanation:") + "\n" +
			theme.Muted.Render(cur.Explanation)
		sections = append(sections,
			components.ArcadeCard(explanation, cw),
			lipgloss.PlaceHorizontal(cw, lipgloss.Right, components.ArcadeButton(label, true, 22)),
		)
	}
	return strings.Join(sections, "\n\n")
}

func (s *QuizScreen) renderFinished(cw int) string {
	score := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d", s.session.Score()))
	total := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", s.session.Total()))

	sections := []string{
		theme.Title.Width(cw).Render("Quiz Complete!"),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, "You scored "+score+" out of "+total),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.ArcadeButton("Try Another Quiz", true, 24)),
	}
	return strings.Join(sections, "\n\n")
}
