package quiz

import "fmt"

// Validator checks a generated question set. Validators run in order; the
// first failure rejects the whole set.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil when the set passes.
	Validate(qs []Question) *ValidationError
}

// ValidationError describes why a question set was rejected.
type ValidationError struct {
	Validator string
	Index     int // offending question, -1 for the set as a whole
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
	}
	return fmt.Sprintf("validator %q: question %d: %s", e.Validator, e.Index, e.Message)
}
