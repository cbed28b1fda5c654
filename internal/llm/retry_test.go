package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var okReply = MockResponse{Content: json.RawMessage(`{"answer":"ok"}`)}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantCalls int
		wantKind  ErrorKind
	}{
		{
			name:      "first attempt succeeds",
			replies:   []MockResponse{okReply},
			wantCalls: 1,
		},
		{
			name:      "transient then success",
			replies:   []MockResponse{down(), okReply},
			wantCalls: 2,
		},
		{
			name:      "all attempts fail",
			replies:   []MockResponse{down(), down(), down(), okReply},
			wantCalls: 3,
			wantKind:  KindUnavailable,
		},
		{
			name:      "truncation is not retried",
			replies:   []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}}, okReply},
			wantCalls: 1,
			wantKind:  KindTruncated,
		},
		{
			name: "invalid response retried once",
			replies: []MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				okReply,
			},
			wantCalls: 2,
			wantKind:  KindInvalid,
		},
		{
			name:      "rate limit honours RetryAfter",
			replies:   []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, okReply},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

			if got := Classify(err); got != tt.wantKind {
				t.Fatalf("error kind = %q, want %q (err %v)", got, tt.wantKind, err)
			}
			if err == nil && string(resp.Content) != `{"answer":"ok"}` {
				t.Errorf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_CanceledContextStopsWaiting(t *testing.T) {
	mock := NewMockProvider(down(), okReply)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_SingleAttemptConfig(t *testing.T) {
	mock := NewMockProvider(down(), okReply)
	_, err := WithRetry(mock, RetryConfig{MaxAttempts: 1}).Generate(context.Background(), Request{})
	if err == nil || mock.CallCount() != 1 {
		t.Fatalf("expected one failed call, got %d calls, err %v", mock.CallCount(), err)
	}
}

func TestRetry_Delegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" || p.Name() != "mock" {
		t.Fatalf("got %q/%q", p.Name(), p.ModelID())
	}
}
