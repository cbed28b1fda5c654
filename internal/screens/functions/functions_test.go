package functions

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proteinlab/internal/matching"
	"github.com/abhisek/proteinlab/internal/ui/components"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

// pickDefinition moves the right-hand cursor onto id and presses Enter.
func pickDefinition(s *FunctionsScreen, id string) tea.Cmd {
	s.cursor[definitionColumn] = 0
	for _, d := range s.game.Definitions() {
		if d.ID == id {
			break
		}
		s.Update(down)
	}
	_, cmd := s.Update(enter)
	return cmd
}

func TestMatchEveryProtein(t *testing.T) {
	s := New(42)

	for i, p := range s.game.Proteins() {
		s.cursor[proteinColumn] = i
		s.col = proteinColumn
		s.Update(enter)
		require.Equal(t, definitionColumn, s.col, "selecting a protein moves to the definitions")

		pickDefinition(s, p.ID)
		require.True(t, s.game.IsMatched(p.ID), "protein %s should be matched", p.Name)
		assert.Equal(t, proteinColumn, s.col)
	}

	require.True(t, s.game.Complete())
	assert.True(t, strings.Contains(s.View(100, 40), matching.CompleteNotice))

	s.Update(enter)
	assert.Equal(t, 0, s.game.MatchedCount(), "Reset Module clears progress")
}

func TestMismatchShowsNotice(t *testing.T) {
	s := New(7)
	s.Update(enter) // first protein

	first := s.game.Proteins()[0].ID
	var wrong string
	for _, d := range s.game.Definitions() {
		if d.ID != first {
			wrong = d.ID
			break
		}
	}

	cmd := pickDefinition(s, wrong)
	require.NotNil(t, cmd)
	assert.Equal(t, matching.MismatchNotice, s.toast.Text())
	selected, ok := s.game.Selected()
	assert.True(t, ok)
	assert.Equal(t, first, selected, "selection survives a mismatch")

	msg := cmd()
	require.IsType(t, components.ToastExpiredMsg{}, msg)
	s.Update(msg)
	assert.Empty(t, s.toast.Text(), "notice clears when its timer fires")
}

func TestTabSwitchesColumn(t *testing.T) {
	s := New(1)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, definitionColumn, s.col)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, proteinColumn, s.col)
}
