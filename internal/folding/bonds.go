package folding

// BondKind is the chemistry of an interaction drawn between two residues.
type BondKind int

const (
	HydrogenBond BondKind = iota
	DisulfideBridge
	IonicBond
)

func (k BondKind) String() string {
	switch k {
	case DisulfideBridge:
		return "disulfide"
	case IonicBond:
		return "ionic"
	default:
		return "hydrogen"
	}
}

// Bond joins residues From and To.
type Bond struct {
	From int      `json:"from"`
	To   int      `json:"to"`
	Kind BondKind `json:"-"`
	Name string   `json:"kind"`
}

func newBond(from, to int, kind BondKind) Bond {
	return Bond{From: from, To: to, Kind: kind, Name: kind.String()}
}

// CoreRadius is the radius of the hydrophobic core drawn at Center during
// tertiary folding.
const CoreRadius = 45

// HydrogenBonds returns the backbone hydrogen bonds for a secondary motif.
// A helix bonds residue i to i+4. A sheet bonds each residue on the upper
// strand to its partner on the lower strand.
func HydrogenBonds(v Variant) []Bond {
	var out []Bond
	if v == Sheet {
		for i := 0; i <= 11; i++ {
			out = append(out, newBond(i, ChainLength-1-i, HydrogenBond))
		}
		return out
	}
	for i := 0; i+4 < ChainLength; i++ {
		out = append(out, newBond(i, i+4, HydrogenBond))
	}
	return out
}

// TertiaryBonds returns the R-group interactions that stabilise the globule.
func TertiaryBonds() []Bond {
	return []Bond{
		newBond(5, 20, DisulfideBridge),
		newBond(8, 22, IonicBond),
	}
}
