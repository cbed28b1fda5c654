package tutor

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proteinlab/internal/llm"
	"github.com/abhisek/proteinlab/internal/quiz"
)

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

// ask types question, submits it and delivers the answer command's
// result. It returns the answer message.
func ask(t *testing.T, s *TutorScreen, question string) answerMsg {
	t.Helper()
	s.input.Model.SetValue(question)
	_, cmd := s.Update(enter)
	require.NotNil(t, cmd)
	require.True(t, s.Busy())

	var reply answerMsg
	for _, msg := range drain(cmd) {
		if a, ok := msg.(answerMsg); ok {
			reply = a
		}
	}
	require.NotEmpty(t, reply.RequestID, "expected an answer message")
	return reply
}

// drain runs cmd and any batched commands it returns, without following
// ticks.
func drain(cmd tea.Cmd) []tea.Msg {
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			if c != nil {
				out = append(out, c())
			}
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestAskAndAnswer(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockText(map[string]string{"answer": "A codon is three mRNA bases."}))
	s := New(quiz.NewTutor(provider, quiz.DefaultConfig(), zerolog.Nop()))

	reply := ask(t, s, "What is a codon?")
	s.Update(reply)

	assert.False(t, s.Busy())
	require.Len(t, s.history, 1)
	assert.Equal(t, "What is a codon?", s.history[0].question)
	assert.Equal(t, "A codon is three mRNA bases.", s.history[0].answer)
	assert.Contains(t, s.View(100, 40), "three mRNA bases")
}

func TestNoCredentialReply(t *testing.T) {
	s := New(nil)
	reply := ask(t, s, "What is a codon?")
	assert.Equal(t, quiz.TutorNoCredential, reply.Answer)
}

func TestBlankQuestionIgnored(t *testing.T) {
	s := New(nil)
	s.input.Model.SetValue("   ")
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.False(t, s.Busy())
	assert.Empty(t, s.history)
}

func TestStaleAnswerDropped(t *testing.T) {
	s := New(nil)
	ask(t, s, "first")
	s.Update(answerMsg{RequestID: "not-mine", Answer: "late"})
	assert.True(t, s.Busy())
	assert.Empty(t, s.history[0].answer)
}

func TestSecondQuestionWhileBusyIgnored(t *testing.T) {
	s := New(nil)
	ask(t, s, "first")
	s.input.Model.SetValue("second")
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.Len(t, s.history, 1)
}

func TestPlaceholderShownWhenEmpty(t *testing.T) {
	s := New(nil)
	assert.Contains(t, s.View(100, 40), "Ask me anything")
}

// ctxProvider fails with the context error once its context is done.
type ctxProvider struct{}

func (ctxProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &llm.Response{Content: json.RawMessage(`{"answer":"late"}`)}, nil
}
func (ctxProvider) ModelID() string { return "ctx" }
func (ctxProvider) Name() string    { return "ctx" }

func TestCloseAbandonsPendingQuestion(t *testing.T) {
	s := New(quiz.NewTutor(ctxProvider{}, quiz.DefaultConfig(), zerolog.Nop()))
	s.Close()

	reply := ask(t, s, "What is a codon?")
	assert.Equal(t, quiz.TutorUnavailable, reply.Answer)
}
