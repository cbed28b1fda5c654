package folding

import "math"

// Logical canvas size. Renderers scale from this space.
const (
	CanvasWidth  = 800
	CanvasHeight = 500
)

// Center is the centre of the globule and of the hemoglobin tetramer.
var Center = Point{X: 400, Y: 250}

// Point is a position on the logical canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position returns where residue i sits for the given stage and variant.
// The variant only matters for Secondary.
func Position(i int, stage Stage, variant Variant) Point {
	switch stage {
	case Secondary:
		if variant == Sheet {
			return sheetPosition(i)
		}
		return Point{
			X: 100 + 18*float64(i),
			Y: 250 + 50*math.Sin(0.5*float64(i)),
		}
	case Tertiary, Quaternary:
		r := float64(i-15) * 12
		a := 0.5 * float64(i)
		return Point{
			X: Center.X + r*math.Cos(a),
			Y: Center.Y + r*math.Sin(a),
		}
	default:
		return Point{X: 100 + 20*float64(i), Y: 200}
	}
}

// sheetPosition lays the chain out as two antiparallel strands. Residues
// 0..14 run left to right on the upper track and 15..29 come back on the
// lower track.
func sheetPosition(i int) Point {
	const (
		startX  = 140
		spacing = 35
	)
	j, track := i, 200.0
	if i > 14 {
		j, track = ChainLength-1-i, 300
	}
	y := track + 15
	if j%2 == 0 {
		y = track - 15
	}
	return Point{X: startX + spacing*float64(j), Y: y}
}

// Layout returns the positions of the whole chain.
func Layout(stage Stage, variant Variant) []Residue {
	out := make([]Residue, ChainLength)
	for i := range out {
		class := ClassOf(i)
		out[i] = Residue{
			Index:     i,
			SideChain: class,
			Class:     class.String(),
			Position:  Position(i, stage, variant),
		}
	}
	return out
}
