package folding

import "testing"

// completeStage runs trigger+complete for the current stage.
func completeStage(t *testing.T, s State) State {
	t.Helper()
	s, ok := s.Trigger()
	if !ok {
		t.Fatalf("Trigger() refused at stage %s", s.Stage)
	}
	s, ok = s.Complete()
	if !ok {
		t.Fatalf("Complete() refused at stage %s", s.Stage)
	}
	return s
}

// foldTo completes every stage up to and including target.
func foldTo(t *testing.T, target Stage) State {
	t.Helper()
	s := NewState()
	for {
		s = completeStage(t, s)
		if s.Stage == target {
			return s
		}
		var ok bool
		if s, ok = s.Advance(); !ok {
			t.Fatalf("Advance() refused at stage %s", s.Stage)
		}
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Stage != Primary || s.Animating || s.Denatured || s.Variant != Helix {
		t.Fatalf("NewState() = %+v, want initial lifecycle", s)
	}
	for i, done := range s.Completed {
		if done {
			t.Errorf("Completed[%d] = true on a new state", i)
		}
	}
}

func TestCompletedOnlyAfterTriggerAndElapse(t *testing.T) {
	s := NewState()
	for stage := Primary; stage <= Quaternary; stage++ {
		if s.Completed[stage] {
			t.Fatalf("stage %s completed before its action ran", stage)
		}

		// Completion without a running action is refused.
		if _, ok := s.Complete(); ok {
			t.Fatalf("Complete() accepted without Trigger() at %s", stage)
		}

		var ok bool
		s, ok = s.Trigger()
		if !ok {
			t.Fatalf("Trigger() refused at %s", stage)
		}
		if s.Completed[stage] {
			t.Fatalf("stage %s completed before the delay elapsed", stage)
		}
		s, _ = s.Complete()
		if !s.Completed[stage] {
			t.Fatalf("stage %s not completed after the delay elapsed", stage)
		}
		if s.Animating {
			t.Fatalf("still animating after completion at %s", stage)
		}
		if stage < Quaternary {
			s, _ = s.Advance()
		}
	}
}

func TestTriggerWhileAnimatingIsIgnored(t *testing.T) {
	s, _ := NewState().Trigger()
	next, ok := s.Trigger()
	if ok {
		t.Fatal("second Trigger() accepted while animating")
	}
	if next != s {
		t.Errorf("state changed: %+v -> %+v", s, next)
	}
}

func TestTriggerOnCompletedStageIsIgnored(t *testing.T) {
	s := completeStage(t, NewState())
	if _, ok := s.Trigger(); ok {
		t.Fatal("Trigger() accepted on a completed stage")
	}
}

func TestAnimatingAndCompletedNeverBothTrue(t *testing.T) {
	s := NewState()
	ops := []func(State) (State, bool){
		State.Trigger, State.Trigger, State.Complete, State.Trigger,
		State.Advance, State.Trigger, State.Advance, State.Complete,
		State.Advance, State.Trigger, State.Complete, State.Advance,
		State.Trigger, State.Complete, State.Denature, State.Trigger,
	}
	for i, op := range ops {
		s, _ = op(s)
		if s.Animating && s.Completed[s.Stage] {
			t.Fatalf("after op %d: animating on a completed stage: %+v", i, s)
		}
	}
}

func TestAdvanceBlockedUntilComplete(t *testing.T) {
	s := NewState()
	for range 5 {
		var ok bool
		s, ok = s.Advance()
		if ok || s.Stage != Primary {
			t.Fatalf("Advance() moved an incomplete stage to %s", s.Stage)
		}
	}

	s, _ = s.Trigger()
	if _, ok := s.Advance(); ok {
		t.Fatal("Advance() accepted while animating")
	}

	s, _ = s.Complete()
	s, ok := s.Advance()
	if !ok || s.Stage != Secondary {
		t.Fatalf("Advance() = %s, %v; want secondary, true", s.Stage, ok)
	}
	if s.Animating || s.Completed[Secondary] {
		t.Errorf("Advance() touched the next stage: %+v", s)
	}
	if !s.Completed[Primary] {
		t.Error("Advance() cleared the previous stage's completion")
	}
}

func TestAdvanceStopsAtQuaternary(t *testing.T) {
	s := foldTo(t, Quaternary)
	next, ok := s.Advance()
	if ok || next.Stage != Quaternary {
		t.Fatalf("Advance() past quaternary = %s, %v", next.Stage, ok)
	}
}

func TestSelectVariant(t *testing.T) {
	s := NewState()
	if _, ok := s.SelectVariant(Sheet); ok {
		t.Fatal("SelectVariant() accepted before secondary structure formed")
	}

	s = foldTo(t, Secondary)
	s, ok := s.SelectVariant(Sheet)
	if !ok || s.Variant != Sheet {
		t.Fatalf("SelectVariant(Sheet) = %s, %v", s.Variant, ok)
	}
	if _, ok := s.SelectVariant(Sheet); ok {
		t.Error("re-selecting the same variant reported a change")
	}
	if _, ok := s.SelectVariant(Variant(7)); ok {
		t.Error("invalid variant accepted")
	}

	// Still selectable later in the lifecycle.
	s, _ = s.Advance()
	s, ok = s.SelectVariant(Helix)
	if !ok || s.Variant != Helix {
		t.Errorf("SelectVariant(Helix) at tertiary = %s, %v", s.Variant, ok)
	}
	if !s.Completed[Secondary] || s.Completed[Tertiary] {
		t.Errorf("SelectVariant() altered completion: %v", s.Completed)
	}
}

func TestDenature(t *testing.T) {
	s := foldTo(t, Tertiary)
	s, _ = s.Advance()
	s, _ = s.Trigger()
	if _, ok := s.Denature(); ok {
		t.Fatal("Denature() accepted before quaternary completed")
	}

	s, _ = s.Complete()
	s, ok := s.Denature()
	if !ok || !s.Denatured {
		t.Fatalf("Denature() = %v, %v; want true, true", s.Denatured, ok)
	}
	again, ok := s.Denature()
	if ok || again != s {
		t.Error("second Denature() was not a no-op")
	}
}

func TestResetFromAnyState(t *testing.T) {
	states := []State{
		NewState(),
		foldTo(t, Secondary),
		foldTo(t, Quaternary),
	}
	animating, _ := foldTo(t, Secondary).Advance()
	animating, _ = animating.Trigger()
	states = append(states, animating)
	denatured, _ := foldTo(t, Quaternary).Denature()
	states = append(states, denatured)

	for _, s := range states {
		if got := s.Reset(); got != NewState() {
			t.Errorf("Reset() from %+v = %+v", s, got)
		}
	}
}

func TestLayoutStageFallsBack(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want Stage
	}{
		{"initial", NewState(), Primary},
		{"secondary pending", State{Stage: Secondary, Completed: [4]bool{true}}, Primary},
		{"secondary animating", State{Stage: Secondary, Animating: true, Completed: [4]bool{true}}, Primary},
		{"secondary done", State{Stage: Secondary, Completed: [4]bool{true, true}}, Secondary},
		{"tertiary pending", State{Stage: Tertiary, Completed: [4]bool{true, true}}, Secondary},
		{"tertiary done", State{Stage: Tertiary, Completed: [4]bool{true, true, true}}, Tertiary},
		{"quaternary pending", State{Stage: Quaternary, Completed: [4]bool{true, true, true}}, Tertiary},
		{"quaternary done", State{Stage: Quaternary, Completed: [4]bool{true, true, true, true}}, Quaternary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.LayoutStage(); got != tt.want {
				t.Errorf("LayoutStage() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPositionUsesEarnedStructure(t *testing.T) {
	s := foldTo(t, Primary)
	s, _ = s.Advance()
	s, _ = s.Trigger()
	for i := range ChainLength {
		if got, want := s.Position(i), Position(i, Primary, Helix); got != want {
			t.Fatalf("residue %d during secondary animation = %v, want primary %v", i, got, want)
		}
	}
	s, _ = s.Complete()
	if got, want := s.Position(3), Position(3, Secondary, Helix); got != want {
		t.Errorf("residue 3 after secondary = %v, want %v", got, want)
	}
}

func TestChainVisible(t *testing.T) {
	s := NewState()
	if s.ChainVisible() {
		t.Fatal("chain visible before synthesis")
	}
	s, _ = s.Trigger()
	if !s.ChainVisible() {
		t.Fatal("chain hidden during synthesis")
	}
	s, _ = s.Complete()
	if !s.ChainVisible() {
		t.Fatal("chain hidden after synthesis")
	}
}

func TestBondsFollowStage(t *testing.T) {
	if b := NewState().Bonds(); b != nil {
		t.Fatalf("initial bonds = %v, want none", b)
	}
	s := foldTo(t, Secondary)
	if got := len(s.Bonds()); got != 26 {
		t.Errorf("helix bonds = %d, want 26", got)
	}
	s, _ = s.SelectVariant(Sheet)
	if got := len(s.Bonds()); got != 12 {
		t.Errorf("sheet bonds = %d, want 12", got)
	}
	s, _ = s.Advance()
	if b := s.Bonds(); b != nil {
		t.Errorf("bonds before tertiary fold = %v, want none", b)
	}
	s = completeStage(t, s)
	if got := s.Bonds(); len(got) != 2 || got[0].Kind != DisulfideBridge || got[1].Kind != IonicBond {
		t.Errorf("tertiary bonds = %+v", got)
	}
}
