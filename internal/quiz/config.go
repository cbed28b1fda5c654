package quiz

import "time"

// Config controls the LLMGenerator and Tutor.
type Config struct {
	// Validators run in order on every generated set.
	Validators []Validator

	// Count is the number of questions requested. Extra questions in a
	// reply are dropped; fewer is accepted.
	Count int

	// MaxTokens is the token budget for a quiz reply.
	MaxTokens int

	// TutorMaxTokens is the token budget for a tutor reply.
	TutorMaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation call. Zero means no extra bound
	// beyond the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the standard validator chain and budgets.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DuplicateValidator{},
		},
		Count:          3,
		MaxTokens:      1536,
		TutorMaxTokens: 256,
		Temperature:    0.7,
		Timeout:        30 * time.Second,
	}
}

// Check trims qs to Count and runs the validator chain. The returned slice
// shares its backing array with qs.
func (c Config) Check(qs []Question) ([]Question, error) {
	if c.Count > 0 && len(qs) > c.Count {
		qs = qs[:c.Count]
	}
	for _, v := range c.Validators {
		if verr := v.Validate(qs); verr != nil {
			return nil, verr
		}
	}
	return qs, nil
}
