package quiz

import "github.com/google/uuid"

// Phase is the lifecycle stage of a Session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Session tracks one run through a question set. It is a value: every
// transition returns the next Session and whether anything changed.
type Session struct {
	id         string
	topic      string
	difficulty Difficulty
	phase      Phase
	questions  []Question
	source     Source
	current    int
	selected   int // -1 until the current question is answered
	score      int
}

// NewSession starts a session in the loading phase with a fresh ID.
func NewSession(topic string, d Difficulty) Session {
	return Session{
		id:         uuid.NewString(),
		topic:      topic,
		difficulty: d,
		phase:      PhaseLoading,
		selected:   -1,
	}
}

func (s Session) ID() string             { return s.id }
func (s Session) Topic() string          { return s.topic }
func (s Session) Difficulty() Difficulty { return s.difficulty }
func (s Session) Phase() Phase           { return s.phase }
func (s Session) Source() Source         { return s.source }
func (s Session) Score() int             { return s.score }
func (s Session) Total() int             { return len(s.questions) }
func (s Session) Index() int             { return s.current }

// Answered reports whether the current question has been answered.
func (s Session) Answered() bool { return s.selected >= 0 }

// Selected returns the chosen option for the current question, or -1.
func (s Session) Selected() int { return s.selected }

// Current returns the question being shown. ok is false outside the active
// phase.
func (s Session) Current() (q Question, ok bool) {
	if s.phase != PhaseActive {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// IsLast reports whether the current question is the final one.
func (s Session) IsLast() bool {
	return s.current == len(s.questions)-1
}

// Load installs a question set and activates the session. Only a loading
// session accepts a batch; an empty batch is replaced by the fallback set.
func (s Session) Load(b Batch) (Session, bool) {
	if s.phase != PhaseLoading {
		return s, false
	}
	if len(b.Questions) == 0 {
		b = Batch{Questions: Fallback(), Source: SourceFallback}
	}
	s.questions = b.Questions
	s.source = b.Source
	s.phase = PhaseActive
	s.current = 0
	s.selected = -1
	s.score = 0
	return s, true
}

// Answer records option i for the current question. Each question accepts
// one answer; later calls and out-of-range options are ignored.
func (s Session) Answer(i int) (Session, bool) {
	if s.phase != PhaseActive || s.Answered() {
		return s, false
	}
	if i < 0 || i >= len(s.questions[s.current].Options) {
		return s, false
	}
	s.selected = i
	if s.questions[s.current].IsCorrect(i) {
		s.score++
	}
	return s, true
}

// Advance moves to the next question, or finishes after the last one. It
// requires the current question to be answered.
func (s Session) Advance() (Session, bool) {
	if s.phase != PhaseActive || !s.Answered() {
		return s, false
	}
	if s.IsLast() {
		s.phase = PhaseFinished
		s.selected = -1
		return s, true
	}
	s.current++
	s.selected = -1
	return s, true
}

// Restart returns a new loading session for the same topic and difficulty.
func (s Session) Restart() Session {
	return NewSession(s.topic, s.difficulty)
}
