package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestOpenFileDatabaseIsReusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "proteinlab.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.EventRepo().AppendQuizResult(ctx, QuizResultData{
		SessionID: "s1", Topic: "Proteins", Difficulty: "IB", Score: 2, Total: 3, Source: "ai",
	}))
	require.NoError(t, s.Close())

	// Reopening runs the migrations again without losing rows.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	results, err := s.EventRepo().QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz",
		InputTokens: 120, OutputTokens: 480, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nCreate 3 multiple-choice questions", ResponseBody: `{"questions":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor",
		InputTokens: 40, OutputTokens: 60, LatencyMs: 300, Success: false,
		ErrorMessage: "provider unavailable",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "tutor", events[0].Purpose, "newest first")
	assert.False(t, events[0].Success)
	assert.Equal(t, "provider unavailable", events[0].ErrorMessage)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Minute)

	quiz, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz"})
	require.NoError(t, err)
	require.Len(t, quiz, 1)
	assert.True(t, quiz[0].Success)
	assert.Equal(t, 480, quiz[0].OutputTokens)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz", Success: true,
		RequestBody: "req", ResponseBody: "resp",
	}))
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "req", e.RequestBody)
	assert.Equal(t, "resp", e.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz", InputTokens: 50, OutputTokens: 100, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "tutor", InputTokens: 10, OutputTokens: 20, LatencyMs: 200, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "quiz", Calls: 2, InputTokens: 150, OutputTokens: 300, AvgLatencyMs: 750}, byPurpose[0])
	assert.Equal(t, "tutor", byPurpose[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 150, OutputTokens: 300}, byModel[0])
}

func TestQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendQuizResult(ctx, QuizResultData{SessionID: "a", Topic: "Proteins", Difficulty: "IB", Score: 3, Total: 3, Source: "ai"}))
	require.NoError(t, repo.AppendQuizResult(ctx, QuizResultData{SessionID: "b", Topic: "Proteins", Difficulty: "AP", Score: 1, Total: 3, Source: "fallback"}))

	results, err := repo.QueryQuizResults(ctx, QueryOpts{Purpose: "ignored"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].SessionID)
	assert.Equal(t, "fallback", results[0].Source)
	assert.Equal(t, 3, results[1].Score)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendQuizResult(ctx, QuizResultData{SessionID: "a", Topic: "Proteins", Difficulty: "IB", Score: 1, Total: 3, Source: "ai"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz", Success: true}))

	require.NoError(t, s.Reset(ctx))

	results, err := repo.QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, results)
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestNopEventRepo(t *testing.T) {
	var repo EventRepo = NopEventRepo{}
	ctx := context.Background()
	assert.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{}))
	assert.NoError(t, repo.AppendQuizResult(ctx, QuizResultData{}))
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("PROTEINLAB_DB", filepath.Join(dir, "explicit", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "explicit", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "explicit"))

	t.Setenv("PROTEINLAB_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proteinlab", "proteinlab.db"), p)
}
