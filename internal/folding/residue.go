package folding

// ChainLength is the number of residues in the simulated polypeptide.
const ChainLength = 30

// SideChain classifies a residue's R group.
type SideChain int

const (
	Neutral SideChain = iota
	Hydrophobic
	Cysteine
	Acidic
	Basic
	Polar
)

func (c SideChain) String() string {
	switch c {
	case Hydrophobic:
		return "hydrophobic"
	case Cysteine:
		return "cysteine"
	case Acidic:
		return "acidic"
	case Basic:
		return "basic"
	case Polar:
		return "polar"
	default:
		return "neutral"
	}
}

// Charge returns "+" or "-" for charged side chains and "" otherwise.
func (c SideChain) Charge() string {
	switch c {
	case Acidic:
		return "-"
	case Basic:
		return "+"
	default:
		return ""
	}
}

// ClassOf returns the side-chain class of the residue at index i.
func ClassOf(i int) SideChain {
	switch {
	case i >= 13 && i <= 17:
		return Hydrophobic
	case i == 5 || i == 20:
		return Cysteine
	case i == 8:
		return Acidic
	case i == 22:
		return Basic
	case i == 2 || i == 27:
		return Polar
	default:
		return Neutral
	}
}

// Residue is a single amino acid placed on the canvas.
type Residue struct {
	Index     int       `json:"index"`
	SideChain SideChain `json:"-"`
	Class     string    `json:"class"`
	Position  Point     `json:"position"`
}
