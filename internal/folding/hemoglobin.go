package folding

// Globin is the chain type of a hemoglobin subunit.
type Globin int

const (
	Alpha Globin = iota
	Beta
)

func (g Globin) String() string {
	if g == Beta {
		return "beta"
	}
	return "alpha"
}

// Subunit places one globin chain of the tetramer relative to Center.
type Subunit struct {
	Label     string  `json:"label"`
	Globin    Globin  `json:"-"`
	Chain     string  `json:"chain"`
	Offset    Point   `json:"offset"`
	Rotation  float64 `json:"rotation"`
	Scale     float64 `json:"scale"`
	MirrorX   bool    `json:"mirror_x"`
	MirrorY   bool    `json:"mirror_y"`
	HemeBound bool    `json:"heme_bound"`
}

// Origin returns the subunit's absolute position on the canvas.
func (s Subunit) Origin() Point {
	return Point{X: Center.X + s.Offset.X, Y: Center.Y + s.Offset.Y}
}

type placement struct {
	label    string
	globin   Globin
	offset   Point
	rotation float64
	mirrorX  bool
	mirrorY  bool
}

var (
	nativeTetramer = []placement{
		{label: "α1", globin: Alpha, offset: Point{X: -50, Y: -50}},
		{label: "β1", globin: Beta, offset: Point{X: 50, Y: -50}, mirrorX: true},
		{label: "α2", globin: Alpha, offset: Point{X: 50, Y: 50}, mirrorX: true, mirrorY: true},
		{label: "β2", globin: Beta, offset: Point{X: -50, Y: 50}, mirrorY: true},
	}
	denaturedTetramer = []placement{
		{label: "α1", globin: Alpha, offset: Point{X: -220, Y: -200}, rotation: -45},
		{label: "β1", globin: Beta, offset: Point{X: 220, Y: -200}, rotation: 45},
		{label: "α2", globin: Alpha, offset: Point{X: 220, Y: 200}, rotation: 135},
		{label: "β2", globin: Beta, offset: Point{X: -220, Y: 200}, rotation: -135},
	}
)

// Hemoglobin returns the four subunits of the tetramer. Denatured subunits
// drift apart, lose their heme groups and shrink slightly.
func Hemoglobin(denatured bool) []Subunit {
	src, scale := nativeTetramer, 1.35
	if denatured {
		src, scale = denaturedTetramer, 1.3
	}
	out := make([]Subunit, len(src))
	for i, p := range src {
		out[i] = Subunit{
			Label:     p.label,
			Globin:    p.globin,
			Chain:     p.globin.String(),
			Offset:    p.offset,
			Rotation:  p.rotation,
			Scale:     scale,
			MirrorX:   p.mirrorX,
			MirrorY:   p.mirrorY,
			HemeBound: !denatured,
		}
	}
	return out
}
