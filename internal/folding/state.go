package folding

// State is the folding simulation's lifecycle. It is a value: every
// transition returns the next State and whether anything changed. Operations
// that are not valid in the current state return the receiver unchanged.
type State struct {
	Stage     Stage
	Animating bool
	Completed [StageCount]bool
	Variant   Variant
	Denatured bool
}

// NewState returns the initial lifecycle: Primary, idle, nothing completed,
// helix selected.
func NewState() State {
	return State{}
}

// Trigger starts the current stage's action. It is refused while an action
// is already running or once the stage is complete.
func (s State) Trigger() (State, bool) {
	if s.Animating || s.Completed[s.Stage] {
		return s, false
	}
	s.Animating = true
	return s, true
}

// Complete finishes the running action and marks the current stage done.
// Only the animation timer calls it.
func (s State) Complete() (State, bool) {
	if !s.Animating {
		return s, false
	}
	s.Animating = false
	s.Completed[s.Stage] = true
	return s, true
}

// Advance moves to the next stage once the current one is complete.
func (s State) Advance() (State, bool) {
	if !s.CanAdvance() {
		return s, false
	}
	s.Stage++
	return s, true
}

// CanAdvance reports whether Advance would move the stage forward.
func (s State) CanAdvance() bool {
	return s.Completed[s.Stage] && s.Stage < Quaternary
}

// SelectVariant switches between helix and sheet once secondary structure
// has formed.
func (s State) SelectVariant(v Variant) (State, bool) {
	if !s.Completed[Secondary] || !v.Valid() || s.Variant == v {
		return s, false
	}
	s.Variant = v
	return s, true
}

// Denature unfolds the assembled protein. It is one-way.
func (s State) Denature() (State, bool) {
	if !s.Completed[Quaternary] || s.Denatured {
		return s, false
	}
	s.Denatured = true
	return s, true
}

// Reset returns the initial lifecycle regardless of the current state.
func (s State) Reset() State {
	return NewState()
}

// ChainVisible reports whether the polypeptide has been synthesized or is
// being synthesized right now.
func (s State) ChainVisible() bool {
	return s.Completed[Primary] || (s.Stage == Primary && s.Animating)
}

// LayoutStage is the stage whose coordinates the chain is drawn with. A stage
// only contributes its layout once completed; until then the previous stage's
// layout is used, down to Primary.
func (s State) LayoutStage() Stage {
	st := s.Stage
	for st > Primary && !s.Completed[st] {
		st--
	}
	return st
}

// Position returns residue i's coordinates for the current state.
func (s State) Position(i int) Point {
	return Position(i, s.LayoutStage(), s.Variant)
}

// Residues returns the chain laid out for the current state.
func (s State) Residues() []Residue {
	return Layout(s.LayoutStage(), s.Variant)
}

// AssemblyVisible reports whether the hemoglobin tetramer replaces the
// single chain on screen.
func (s State) AssemblyVisible() bool {
	return s.Stage == Quaternary && s.Completed[Quaternary]
}

// Bonds returns the interactions drawn over the chain in the current state.
func (s State) Bonds() []Bond {
	switch {
	case s.Stage == Secondary && s.Completed[Secondary]:
		return HydrogenBonds(s.Variant)
	case s.Stage == Tertiary && s.Completed[Tertiary]:
		return TertiaryBonds()
	default:
		return nil
	}
}
