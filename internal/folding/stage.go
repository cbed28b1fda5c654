package folding

// Stage is one level of protein structure. Stages are ordered and only move
// forward; the single way back is Reset.
type Stage int

const (
	Primary Stage = iota
	Secondary
	Tertiary
	Quaternary
)

// StageCount is the number of structural stages.
const StageCount = 4

var stageNames = [StageCount]string{"primary", "secondary", "tertiary", "quaternary"}

func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stageNames[s]
}

// Valid reports whether s names one of the four stages.
func (s Stage) Valid() bool {
	return s >= Primary && s <= Quaternary
}

// ParseStage maps a stage name or its ordinal ("0".."3") to a Stage.
func ParseStage(v string) (Stage, bool) {
	for i, name := range stageNames {
		if v == name || (len(v) == 1 && v[0] == byte('0'+i)) {
			return Stage(i), true
		}
	}
	return Primary, false
}

// Variant selects the secondary-structure motif.
type Variant int

const (
	Helix Variant = iota
	Sheet
)

func (v Variant) String() string {
	switch v {
	case Helix:
		return "helix"
	case Sheet:
		return "sheet"
	default:
		return "unknown"
	}
}

// Valid reports whether v is Helix or Sheet.
func (v Variant) Valid() bool {
	return v == Helix || v == Sheet
}

// ParseVariant maps "helix" or "sheet" to a Variant. The empty string
// selects Helix.
func ParseVariant(v string) (Variant, bool) {
	switch v {
	case "", "helix", "alpha":
		return Helix, true
	case "sheet", "beta":
		return Sheet, true
	default:
		return Helix, false
	}
}

// StageInfo is the learner-facing text for a stage.
type StageInfo struct {
	Stage       Stage  `json:"stage"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ActionLabel string `json:"action_label"`
	Tip         string `json:"tip"`
}

var stageCatalog = [StageCount]StageInfo{
	{
		Stage:       Primary,
		Title:       "Primary Structure",
		Subtitle:    "Amino Acid Sequence",
		Description: "The primary structure is the specific sequence of amino acids determined by DNA. During translation, the ribosome reads mRNA to synthesize this polypeptide chain.",
		ActionLabel: "Synthesize Polypeptide",
		Tip:         "Peptide bonds link each residue to the next. The order of R groups is fixed by the gene.",
	},
	{
		Stage:       Secondary,
		Title:       "Secondary Structure",
		Subtitle:    "Backbone H-Bonding",
		Description: "Hydrogen bonds form specifically between the Carbonyl Oxygen (C=O) and Amino Hydrogen (N-H) of the polypeptide backbone. R-groups are NOT involved. This creates repeating patterns: the coiled Alpha Helix or the flat Beta-Pleated Sheet.",
		ActionLabel: "Form Hydrogen Bonds",
		Tip:         "In an alpha helix each C=O bonds to the N-H four residues further along the chain.",
	},
	{
		Stage:       Tertiary,
		Title:       "Tertiary Structure",
		Subtitle:    "R-Group Interactions",
		Description: "To minimize free energy in an aqueous environment, the protein folds into a compact 3D globular shape. Hydrophobic R-groups cluster in the core (entropy driven), while charged and polar groups form Ionic and Hydrogen bonds. Covalent Disulfide bridges lock the structure.",
		ActionLabel: "Fold Side Chains",
		Tip:         "Disulfide bridges form between the sulfur atoms of two cysteine residues.",
	},
	{
		Stage:       Quaternary,
		Title:       "Quaternary Structure",
		Subtitle:    "Complex Assembly & Function",
		Description: "In Hemoglobin, four globular polypeptide subunits (2 Alpha, 2 Beta) assemble into a functional tetramer. Each subunit contains a Heme group with Iron (Fe²⁺) that binds Oxygen. This specific arrangement allows the protein to transport oxygen efficiently throughout the body.",
		ActionLabel: "Assemble Hemoglobin",
		Tip:         "Heat or extreme pH disrupts the bonds holding the subunits together. The peptide bonds survive.",
	},
}

// Info returns the catalog entry for s. Out-of-range stages return the
// Primary entry.
func Info(s Stage) StageInfo {
	if !s.Valid() {
		return stageCatalog[Primary]
	}
	return stageCatalog[s]
}

// Catalog returns all stage entries in order.
func Catalog() []StageInfo {
	out := make([]StageInfo, StageCount)
	copy(out, stageCatalog[:])
	return out
}
