package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/proteinlab/internal/store"
	"github.com/rs/zerolog"
)

type recordingRepo struct {
	store.NopEventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.events = append(r.events, d)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"answer":"Peptide bond."}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	p := WithLogging(mock, repo, zerolog.Nop())

	ctx := WithPurpose(context.Background(), PurposeTutor)
	_, err := p.Generate(ctx, Request{
		System:   "You are an expert IB/AP Biology teacher.",
		Messages: []Message{{Role: RoleUser, Content: "What links amino acids?"}},
		Schema:   &Schema{Name: "tutor-answer", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "mock" || e.Purpose != "tutor" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 12 || e.OutputTokens != 4 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	for _, want := range []string{"[system]", "[user]\nWhat links amino acids?", "[schema: tutor-answer]"} {
		if !strings.Contains(e.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, e.RequestBody)
		}
	}
	if e.ResponseBody != `{"answer":"Peptide bond."}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(), repo, zerolog.Nop())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("events = %+v", repo.events)
	}
	if repo.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", repo.events[0].Purpose)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo, zerolog.Nop())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("audit failure leaked into the request: %v", err)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, zerolog.Nop())
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
