package folding

import (
	"time"

	"github.com/google/uuid"
)

// AnimationDuration is how long a stage action runs before it completes.
const AnimationDuration = 3 * time.Second

// synthesisStep is the interval between residues appearing while the
// primary chain is being synthesized.
const synthesisStep = 100 * time.Millisecond

// Pending is the handle of the one outstanding animation timer. The caller
// schedules a wake-up at Due and hands the ID back to Elapse.
type Pending struct {
	ID      string
	Stage   Stage
	Started time.Time
	Due     time.Time
}

// Simulation owns a folding State together with its pending timer handle.
// It is not safe for concurrent use; the event loop that owns it serialises
// every call.
type Simulation struct {
	state   State
	pending *Pending
}

// NewSimulation returns a simulation in the initial state.
func NewSimulation() *Simulation {
	return &Simulation{state: NewState()}
}

// State returns a copy of the current lifecycle.
func (s *Simulation) State() State {
	return s.state
}

// Pending returns the outstanding timer handle, if any.
func (s *Simulation) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// Trigger starts the current stage's action at now. When accepted it
// returns the handle the caller must schedule.
func (s *Simulation) Trigger(now time.Time) (Pending, bool) {
	next, ok := s.state.Trigger()
	if !ok {
		return Pending{}, false
	}
	s.state = next
	p := Pending{
		ID:      uuid.NewString(),
		Stage:   next.Stage,
		Started: now,
		Due:     now.Add(AnimationDuration),
	}
	s.pending = &p
	return p, true
}

// Elapse delivers the timer identified by id. Timers that were dropped by
// Reset, or that belong to another simulation, are ignored.
func (s *Simulation) Elapse(id string) bool {
	if s.pending == nil || s.pending.ID != id {
		return false
	}
	s.pending = nil
	next, ok := s.state.Complete()
	s.state = next
	return ok
}

// Poll completes the pending action if its deadline has passed.
func (s *Simulation) Poll(now time.Time) bool {
	if s.pending == nil || now.Before(s.pending.Due) {
		return false
	}
	return s.Elapse(s.pending.ID)
}

// Advance moves to the next stage.
func (s *Simulation) Advance() bool {
	next, ok := s.state.Advance()
	s.state = next
	return ok
}

// SelectVariant switches the secondary motif.
func (s *Simulation) SelectVariant(v Variant) bool {
	next, ok := s.state.SelectVariant(v)
	s.state = next
	return ok
}

// Denature unfolds the assembled tetramer.
func (s *Simulation) Denature() bool {
	next, ok := s.state.Denature()
	s.state = next
	return ok
}

// Reset returns to the initial state and drops any pending timer.
func (s *Simulation) Reset() {
	s.state = s.state.Reset()
	s.pending = nil
}

// SynthesisProgress returns how many residues are visible at now. Outside
// the primary synthesis window the whole chain (or none of it) is shown.
func (s *Simulation) SynthesisProgress(now time.Time) int {
	if !s.state.ChainVisible() {
		return 0
	}
	if s.pending == nil || s.pending.Stage != Primary {
		return ChainLength
	}
	elapsed := now.Sub(s.pending.Started)
	if elapsed < 0 {
		return 1
	}
	n := int(elapsed/synthesisStep) + 1
	return min(n, ChainLength)
}
