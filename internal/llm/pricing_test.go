package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"gemini-2.5-flash", true},
		{"google/gemini-2.5-flash", true},
		{"gpt-4o-mini", true},
		{"openai/gpt-4o-mini", true},
		{"meta-llama/llama-3-8b", false},
		{"mock", false},
	}
	for _, tt := range tests {
		if got := LookupCost(tt.model); (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Cost() = %v, want 0.8", got)
	}
}
