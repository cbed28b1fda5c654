package folding

import (
	"math"
	"testing"
)

func TestPositionDeterministic(t *testing.T) {
	for stage := Primary; stage <= Quaternary; stage++ {
		for _, v := range []Variant{Helix, Sheet} {
			for i := range ChainLength {
				a, b := Position(i, stage, v), Position(i, stage, v)
				if a != b {
					t.Fatalf("Position(%d, %s, %s) not deterministic: %v vs %v", i, stage, v, a, b)
				}
			}
		}
	}
}

func TestPositionPrimary(t *testing.T) {
	for i := range ChainLength {
		got := Position(i, Primary, Sheet)
		want := Point{X: 100 + 20*float64(i), Y: 200}
		if got != want {
			t.Errorf("Position(%d, primary) = %v, want %v", i, got, want)
		}
	}
}

func TestPositionHelix(t *testing.T) {
	got := Position(3, Secondary, Helix)
	if got.X != 154 {
		t.Errorf("X = %v, want 154", got.X)
	}
	if want := 250 + 50*math.Sin(1.5); math.Abs(got.Y-want) > 1e-9 {
		t.Errorf("Y = %v, want %v", got.Y, want)
	}
}

func TestPositionSheet(t *testing.T) {
	tests := []struct {
		i    int
		want Point
	}{
		{0, Point{140, 185}},
		{1, Point{175, 215}},
		{14, Point{630, 185}},
		{15, Point{630, 285}},
		{16, Point{595, 315}},
		{29, Point{140, 285}},
	}
	for _, tt := range tests {
		if got := Position(tt.i, Secondary, Sheet); got != tt.want {
			t.Errorf("Position(%d, sheet) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestPositionGlobule(t *testing.T) {
	// The middle residue sits at the centre of the spiral.
	if got := Position(15, Tertiary, Helix); got != Center {
		t.Errorf("residue 15 = %v, want centre %v", got, Center)
	}
	for i := range ChainLength {
		if Position(i, Tertiary, Helix) != Position(i, Quaternary, Sheet) {
			t.Fatalf("tertiary and quaternary chain layouts differ at %d", i)
		}
		p := Position(i, Tertiary, Helix)
		r := math.Hypot(p.X-Center.X, p.Y-Center.Y)
		if want := math.Abs(float64(i-15)) * 12; math.Abs(r-want) > 1e-9 {
			t.Errorf("residue %d radius = %v, want %v", i, r, want)
		}
	}
}

func TestClassOf(t *testing.T) {
	want := map[int]SideChain{
		2: Polar, 5: Cysteine, 8: Acidic, 13: Hydrophobic, 17: Hydrophobic,
		20: Cysteine, 22: Basic, 27: Polar, 0: Neutral, 12: Neutral, 18: Neutral,
	}
	for i, c := range want {
		if got := ClassOf(i); got != c {
			t.Errorf("ClassOf(%d) = %s, want %s", i, got, c)
		}
	}
}

func TestLayout(t *testing.T) {
	rs := Layout(Secondary, Sheet)
	if len(rs) != ChainLength {
		t.Fatalf("len = %d, want %d", len(rs), ChainLength)
	}
	if rs[8].Class != "acidic" || rs[8].SideChain.Charge() != "-" {
		t.Errorf("residue 8 = %+v", rs[8])
	}
	if rs[29].Position != Position(29, Secondary, Sheet) {
		t.Errorf("residue 29 position = %v", rs[29].Position)
	}
}

func TestParseStageAndVariant(t *testing.T) {
	if s, ok := ParseStage("2"); !ok || s != Tertiary {
		t.Errorf(`ParseStage("2") = %s, %v`, s, ok)
	}
	if s, ok := ParseStage("quaternary"); !ok || s != Quaternary {
		t.Errorf(`ParseStage("quaternary") = %s, %v`, s, ok)
	}
	if _, ok := ParseStage("7"); ok {
		t.Error(`ParseStage("7") accepted`)
	}
	if v, ok := ParseVariant("sheet"); !ok || v != Sheet {
		t.Errorf(`ParseVariant("sheet") = %s, %v`, v, ok)
	}
	if _, ok := ParseVariant("coil"); ok {
		t.Error(`ParseVariant("coil") accepted`)
	}
}

func TestHemoglobin(t *testing.T) {
	native := Hemoglobin(false)
	if len(native) != 4 {
		t.Fatalf("subunits = %d, want 4", len(native))
	}
	alphas := 0
	for _, s := range native {
		if s.Globin == Alpha {
			alphas++
		}
		if !s.HemeBound || s.Scale != 1.35 {
			t.Errorf("native %s = %+v", s.Label, s)
		}
	}
	if alphas != 2 {
		t.Errorf("alpha subunits = %d, want 2", alphas)
	}

	denatured := Hemoglobin(true)
	for i, s := range denatured {
		if s.HemeBound {
			t.Errorf("denatured %s still binds heme", s.Label)
		}
		if math.Abs(s.Offset.X) <= math.Abs(native[i].Offset.X) {
			t.Errorf("denatured %s did not drift apart: %v", s.Label, s.Offset)
		}
	}
	if got := denatured[0].Origin(); got != (Point{180, 50}) {
		t.Errorf("α1 origin = %v, want (180, 50)", got)
	}
}
