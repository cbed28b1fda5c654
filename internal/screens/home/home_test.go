package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proteinlab/internal/router"
	"github.com/abhisek/proteinlab/internal/screens/functions"
	quizscreen "github.com/abhisek/proteinlab/internal/screens/quiz"
	"github.com/abhisek/proteinlab/internal/store"
)

type fakeRepo struct {
	store.NopEventRepo
	results []store.QuizResult
}

func (f fakeRepo) QueryQuizResults(context.Context, store.QueryOpts) ([]store.QuizResult, error) {
	return f.results, nil
}

func result(score, total int) store.QuizResult {
	return store.QuizResult{Timestamp: time.Now(), QuizResultData: store.QuizResultData{Score: score, Total: total}}
}

// selectItem moves the menu cursor to label and presses Enter.
func selectItem(t *testing.T, h *HomeScreen, label string) tea.Msg {
	t.Helper()
	for i, item := range h.menu.Items {
		if item.Label == label {
			h.menu.Selected = i
			_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			require.NotNil(t, cmd)
			return cmd()
		}
	}
	t.Fatalf("no menu item %q", label)
	return nil
}

func TestMenuOpensScreens(t *testing.T) {
	h := New(Deps{Seed: func() uint64 { return 3 }})

	msg := selectItem(t, h, "FUNCTIONS")
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	assert.IsType(t, &functions.FunctionsScreen{}, push.Screen)

	msg = selectItem(t, h, "QUIZ")
	push, ok = msg.(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &quizscreen.QuizScreen{}, push.Screen)
}

func TestEveryEntryHasAction(t *testing.T) {
	h := New(Deps{})
	require.Len(t, h.menu.Items, 8)
	for _, item := range h.menu.Items {
		assert.NotNil(t, item.Action, item.Label)
		assert.NotEmpty(t, item.Description, item.Label)
	}
}

func TestStatsFromHistory(t *testing.T) {
	h := New(Deps{Provider: "gemini", EventRepo: fakeRepo{results: []store.QuizResult{result(3, 3), result(1, 3)}}})
	h.Update(h.Init()())

	assert.Equal(t, 2, h.stats.quizzes)
	assert.Equal(t, 100, h.stats.best)
	assert.Equal(t, MascotCelebrating, h.mascot())
	assert.Contains(t, h.View(120, 40), "gemini")
}

func TestOfflineBanner(t *testing.T) {
	h := New(Deps{})
	assert.Equal(t, MascotAlert, h.mascot())
	assert.Contains(t, h.View(120, 40), "No AI key set")
}

func TestSummarizeSkipsEmptyResults(t *testing.T) {
	st := summarize([]store.QuizResult{result(0, 0), result(2, 4)})
	assert.Equal(t, 2, st.quizzes)
	assert.Equal(t, 50, st.best)
	assert.False(t, st.lastPerfect)
}
