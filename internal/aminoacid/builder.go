// Package aminoacid is the general-structure builder: place the four groups
// around an alpha carbon.
package aminoacid

// Zone is a bonding position around the alpha carbon.
type Zone int

const (
	Top Zone = iota
	Right
	Bottom
	Left
)

// Zones lists every zone.
var Zones = []Zone{Top, Right, Bottom, Left}

func (z Zone) String() string {
	switch z {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Part is a group that bonds to the alpha carbon.
type Part struct {
	ID    string
	Label string
	Zone  Zone
}

// Parts in the order they are offered.
var Parts = []Part{
	{ID: "amine", Label: "Amine Group (-NH₂)", Zone: Left},
	{ID: "carboxyl", Label: "Carboxyl Group (-COOH)", Zone: Right},
	{ID: "hydrogen", Label: "Hydrogen (-H)", Zone: Top},
	{ID: "r-group", Label: "R Group (Side Chain)", Zone: Bottom},
}

// WrongPlacement is the hint shown when a part is dropped in the wrong zone.
const WrongPlacement = "Incorrect placement! Remember the general structure."

// Builder tracks which zones are filled and which part is in hand.
type Builder struct {
	placed   [4]string
	selected string
}

// Selected returns the part ID in hand.
func (b Builder) Selected() (string, bool) {
	return b.selected, b.selected != ""
}

// Placed returns the part ID in zone z, or "".
func (b Builder) Placed(z Zone) string {
	if z < Top || z > Left {
		return ""
	}
	return b.placed[z]
}

// IsPlaced reports whether the part has been placed.
func (b Builder) IsPlaced(id string) bool {
	for _, p := range b.placed {
		if p == id {
			return true
		}
	}
	return false
}

// Complete reports whether all four zones are filled.
func (b Builder) Complete() bool {
	for _, p := range b.placed {
		if p == "" {
			return false
		}
	}
	return true
}

// Select picks up a part that has not been placed yet.
func (b Builder) Select(id string) (Builder, bool) {
	if _, ok := lookup(id); !ok || b.IsPlaced(id) {
		return b, false
	}
	b.selected = id
	return b, true
}

// Place drops the part in hand into z. A wrong zone returns the hint and
// keeps the part in hand.
func (b Builder) Place(z Zone) (Builder, string) {
	part, ok := lookup(b.selected)
	if !ok {
		return b, ""
	}
	if part.Zone != z {
		return b, WrongPlacement
	}
	b.placed[z] = part.ID
	b.selected = ""
	return b, ""
}

// Reset empties every zone.
func (b Builder) Reset() Builder {
	return Builder{}
}

func lookup(id string) (Part, bool) {
	for _, p := range Parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}
