// Package peptide models the condensation reaction that joins two amino
// acids with a peptide bond.
package peptide

// Step is the progress of the reaction.
type Step int

const (
	StepStart    Step = iota // nothing selected
	StepHydroxyl             // leaving -OH selected on the first amino acid
	StepHydrogen             // leaving -H selected on the second amino acid
	StepBonded               // bond formed, water released
)

func (s Step) String() string {
	switch s {
	case StepHydroxyl:
		return "hydroxyl-selected"
	case StepHydrogen:
		return "hydrogen-selected"
	case StepBonded:
		return "bonded"
	default:
		return "start"
	}
}

// Target is a selectable atom or group on the two reacting amino acids.
// Amino acid 1 sits on the left with its carboxyl end facing amino acid 2.
type Target int

const (
	CarboxylHydroxyl Target = iota // -OH of amino acid 1's carboxyl group
	CarbonylOxygen                 // =O of amino acid 1's carboxyl group
	AlphaHydrogen                  // H on either alpha carbon
	SideChain                      // either R group
	AmineHydrogen                  // H of amino acid 2's amine group
	TerminalHydrogen               // H of amino acid 1's free amine end
	TerminalHydroxyl               // -OH of amino acid 2's free carboxyl end
)

// Targets lists every selectable target in display order.
var Targets = []Target{
	TerminalHydrogen, AlphaHydrogen, SideChain, CarbonylOxygen,
	CarboxylHydroxyl, AmineHydrogen, TerminalHydroxyl,
}

func (t Target) String() string {
	switch t {
	case CarboxylHydroxyl:
		return "carboxyl -OH (amino acid 1)"
	case CarbonylOxygen:
		return "carbonyl =O (amino acid 1)"
	case AlphaHydrogen:
		return "alpha carbon H"
	case SideChain:
		return "R group"
	case AmineHydrogen:
		return "amine -H (amino acid 2)"
	case TerminalHydrogen:
		return "amine -H (amino acid 1)"
	case TerminalHydroxyl:
		return "carboxyl -OH (amino acid 2)"
	default:
		return "unknown"
	}
}

// Prompts shown for each step.
const (
	PromptHydroxyl = "Step 1: Select the Hydroxyl (-OH) group from the Carboxyl end."
	PromptHydrogen = "Step 2: Select a Hydrogen (-H) atom from the Amine end."
	PromptReady    = "Structure ready. Form the bond!"
	PromptBonded   = "Success! Peptide Bond formed & Water released."
)

// Outcome reports what a selection did. Hint is set when a selection was
// rejected and the learner should be told why.
type Outcome struct {
	Accepted bool
	Hint     string
}

// Stepper is the reaction's state. The zero value is ready at StepStart.
// Transitions return a new Stepper and leave the receiver untouched.
type Stepper struct {
	step Step
}

// New returns a stepper at the start of the reaction.
func New() Stepper {
	return Stepper{}
}

// Step returns the current step.
func (s Stepper) Step() Step {
	return s.step
}

// Done reports whether the bond has formed.
func (s Stepper) Done() bool {
	return s.step == StepBonded
}

// Prompt returns the instruction for the current step.
func (s Stepper) Prompt() string {
	switch s.step {
	case StepHydroxyl:
		return PromptHydrogen
	case StepHydrogen:
		return PromptReady
	case StepBonded:
		return PromptBonded
	default:
		return PromptHydroxyl
	}
}

// Expected returns the target that advances the current step, if any.
func (s Stepper) Expected() (Target, bool) {
	switch s.step {
	case StepStart:
		return CarboxylHydroxyl, true
	case StepHydroxyl:
		return AmineHydrogen, true
	default:
		return 0, false
	}
}

// Select picks a target. The correct target advances one step. A wrong
// target at the first two steps is rejected with a hint. Selections once
// both leaving groups are chosen are ignored.
func (s Stepper) Select(t Target) (Stepper, Outcome) {
	want, ok := s.Expected()
	if !ok {
		return s, Outcome{}
	}
	if t != want {
		return s, Outcome{Hint: hintFor(s.step, t)}
	}
	s.step++
	return s, Outcome{Accepted: true}
}

// FormBond joins the amino acids once both leaving groups are selected.
func (s Stepper) FormBond() (Stepper, bool) {
	if s.step != StepHydrogen {
		return s, false
	}
	s.step = StepBonded
	return s, true
}

// Reset returns to the start from any step.
func (s Stepper) Reset() Stepper {
	return New()
}

func hintFor(step Step, t Target) string {
	if step == StepStart {
		switch t {
		case CarbonylOxygen:
			return "The double-bonded oxygen stays in the chain. Pick the -OH that leaves."
		case TerminalHydroxyl:
			return "Use the carboxyl group that faces the second amino acid."
		case AmineHydrogen, TerminalHydrogen:
			return "Start with the carboxyl end: water needs its -OH first."
		default:
			return "Only the carboxyl -OH leaves in a condensation reaction."
		}
	}
	switch t {
	case TerminalHydrogen:
		return "That amine is at the far end of the chain. Use the second amino acid's amine."
	case AlphaHydrogen, SideChain:
		return "The leaving hydrogen comes from the amine group, not the alpha carbon or R group."
	default:
		return "Now pick a hydrogen from the amine (-NH2) of the second amino acid."
	}
}
