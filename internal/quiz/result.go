package quiz

// Result is the outcome of one generation attempt, as delivered back to a
// session.
type Result struct {
	Questions []Question
	Err       error
}

// Batch is a question set ready to be shown, with its provenance.
type Batch struct {
	Questions []Question `json:"questions"`
	Source    Source     `json:"source"`

	// Reason is the generation error that forced the fallback set. It is
	// for logs only and never shown to the learner.
	Reason error `json:"-"`
}

// Resolve maps a generation result to a Batch. Any error or empty set
// yields the fallback questions.
func (r Result) Resolve() Batch {
	if r.Err != nil {
		return Batch{Questions: Fallback(), Source: SourceFallback, Reason: r.Err}
	}
	if len(r.Questions) == 0 {
		return Batch{Questions: Fallback(), Source: SourceFallback}
	}
	return Batch{Questions: r.Questions, Source: SourceAI}
}
