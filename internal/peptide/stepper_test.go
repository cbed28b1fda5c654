package peptide

import "testing"

func TestWrongTargetAtStartIsRejected(t *testing.T) {
	for _, target := range Targets {
		if target == CarboxylHydroxyl {
			continue
		}
		s, out := New().Select(target)
		if out.Accepted || s.Step() != StepStart {
			t.Errorf("Select(%s) at start = %s, accepted=%v", target, s.Step(), out.Accepted)
		}
		if out.Hint == "" {
			t.Errorf("Select(%s) at start gave no hint", target)
		}
	}
}

func TestWrongTargetAfterHydroxylIsRejected(t *testing.T) {
	s, _ := New().Select(CarboxylHydroxyl)
	for _, target := range Targets {
		if target == AmineHydrogen {
			continue
		}
		next, out := s.Select(target)
		if out.Accepted || next.Step() != StepHydroxyl {
			t.Errorf("Select(%s) after hydroxyl = %s", target, next.Step())
		}
		if out.Hint == "" {
			t.Errorf("Select(%s) after hydroxyl gave no hint", target)
		}
	}
}

func TestCorrectSequence(t *testing.T) {
	s := New()
	if s.Prompt() != PromptHydroxyl {
		t.Fatalf("Prompt() = %q", s.Prompt())
	}

	if _, ok := s.FormBond(); ok {
		t.Fatal("FormBond() accepted at start")
	}

	s, out := s.Select(CarboxylHydroxyl)
	if !out.Accepted || s.Step() != StepHydroxyl || s.Prompt() != PromptHydrogen {
		t.Fatalf("after -OH: step=%s prompt=%q", s.Step(), s.Prompt())
	}
	s, out = s.Select(AmineHydrogen)
	if !out.Accepted || s.Step() != StepHydrogen || s.Prompt() != PromptReady {
		t.Fatalf("after -H: step=%s prompt=%q", s.Step(), s.Prompt())
	}

	s, ok := s.FormBond()
	if !ok || !s.Done() || s.Prompt() != PromptBonded {
		t.Fatalf("after FormBond: step=%s prompt=%q", s.Step(), s.Prompt())
	}
	if _, ok := s.FormBond(); ok {
		t.Error("FormBond() accepted twice")
	}
}

func TestSelectionsIgnoredOnceReady(t *testing.T) {
	s, _ := New().Select(CarboxylHydroxyl)
	s, _ = s.Select(AmineHydrogen)
	for _, target := range Targets {
		next, out := s.Select(target)
		if out.Accepted || out.Hint != "" || next != s {
			t.Errorf("Select(%s) when ready = %+v", target, out)
		}
	}
}

func TestReset(t *testing.T) {
	states := []Stepper{New()}
	s := New()
	s, _ = s.Select(CarboxylHydroxyl)
	states = append(states, s)
	s, _ = s.Select(AmineHydrogen)
	states = append(states, s)
	s, _ = s.FormBond()
	states = append(states, s)

	for _, st := range states {
		if got := st.Reset(); got.Step() != StepStart {
			t.Errorf("Reset() from %s = %s", st.Step(), got.Step())
		}
	}
}

func TestSelectDoesNotMutateReceiver(t *testing.T) {
	s := New()
	s.Select(CarboxylHydroxyl)
	if s.Step() != StepStart {
		t.Errorf("receiver advanced to %s", s.Step())
	}
}
