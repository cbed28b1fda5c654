package quiz

import (
	"fmt"
	"strings"
)

// StructuralValidator checks shape: a non-empty set, non-empty prompts,
// exactly four distinct non-empty options and an in-range answer index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qs []Question) *ValidationError {
	if len(qs) == 0 {
		return v.fail(-1, "no questions")
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Question) == "" {
			return v.fail(i, "question text is empty")
		}
		if len(q.Options) != OptionCount {
			return v.fail(i, fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			key := strings.ToLower(strings.TrimSpace(opt))
			if key == "" {
				return v.fail(i, "option is empty")
			}
			if seen[key] {
				return v.fail(i, fmt.Sprintf("duplicate option %q", opt))
			}
			seen[key] = true
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
			return v.fail(i, fmt.Sprintf("correctAnswer %d out of range", q.CorrectAnswer))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Index: i, Message: msg}
}

// DuplicateValidator rejects sets that ask the same question twice.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(qs []Question) *ValidationError {
	seen := make(map[string]int, len(qs))
	for i, q := range qs {
		key := normalize(q.Question)
		if j, ok := seen[key]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Index:     i,
				Message:   fmt.Sprintf("repeats question %d", j),
			}
		}
		seen[key] = i
	}
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
