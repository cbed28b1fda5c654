package folding

import (
	"image/color"
	"math"

	fold "github.com/abhisek/proteinlab/internal/folding"
	"github.com/abhisek/proteinlab/internal/ui/canvas"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

// Draw order on the canvas.
const (
	layerCore = iota
	layerBackbone
	layerBond
	layerResidue
	layerLabel
)

// renderScene draws the chain, its bonds, or the hemoglobin tetramer.
// visible limits how many residues are drawn while the chain is being
// synthesized.
func renderScene(st fold.State, visible, cols, rows int) string {
	c := canvas.New(cols, rows, fold.CanvasWidth, fold.CanvasHeight)

	if st.AssemblyVisible() {
		drawHemoglobin(c, fold.Hemoglobin(st.Denatured))
		return c.Render()
	}
	if !st.ChainVisible() {
		c.Text(fold.Center.X-110, fold.Center.Y, "ribosome waiting for mRNA...", theme.TextDim, layerLabel)
		return c.Render()
	}

	residues := st.Residues()
	visible = min(visible, len(residues))

	if st.LayoutStage() >= fold.Tertiary {
		c.Circle(fold.Center.X, fold.Center.Y, fold.CoreRadius, '░', theme.Hydrophobic, layerCore)
	}

	for i := 1; i < visible; i++ {
		a, b := residues[i-1].Position, residues[i].Position
		c.Line(a.X, a.Y, b.X, b.Y, '·', theme.Backbone, layerBackbone)
	}

	for _, bond := range st.Bonds() {
		if bond.From >= visible || bond.To >= visible {
			continue
		}
		a, b := residues[bond.From].Position, residues[bond.To].Position
		glyph, fg := bondStyle(bond.Kind)
		c.Line(a.X, a.Y, b.X, b.Y, glyph, fg, layerBond)
	}

	for _, r := range residues[:visible] {
		glyph := '●'
		if ch := r.SideChain.Charge(); ch != "" {
			glyph = []rune(ch)[0]
		}
		c.Plot(r.Position.X, r.Position.Y, glyph, theme.SideChainColor(r.Class), layerResidue)
	}
	return c.Render()
}

func bondStyle(k fold.BondKind) (rune, color.Color) {
	switch k {
	case fold.DisulfideBridge:
		return '═', theme.Disulfide
	case fold.IonicBond:
		return '~', theme.IonicBond
	default:
		return ':', theme.HydrogenBond
	}
}

// drawHemoglobin draws each subunit as a globule with its heme group, or as
// a loose strand once denatured.
func drawHemoglobin(c *canvas.Canvas, subunits []fold.Subunit) {
	for _, s := range subunits {
		o := s.Origin()
		fg := theme.AlphaGlobin
		if s.Globin == fold.Beta {
			fg = theme.BetaGlobin
		}

		if s.HemeBound {
			radius := 30 * s.Scale
			c.Circle(o.X, o.Y, radius, '●', fg, layerResidue)
			c.Circle(o.X, o.Y, radius/2, '•', fg, layerBackbone)
			c.Plot(o.X, o.Y, '◆', theme.Heme, layerLabel)
			c.Text(o.X+radius+8, o.Y, s.Label, theme.Text, layerLabel)
			continue
		}

		a := s.Rotation * math.Pi / 180
		length := 90 * s.Scale
		for t := 0.0; t <= 1; t += 0.04 {
			wiggle := 12 * math.Sin(t*4*math.Pi)
			x := o.X + t*length*math.Cos(a) - wiggle*math.Sin(a)
			y := o.Y + t*length*math.Sin(a) + wiggle*math.Cos(a)
			c.Plot(x, y, '~', fg, layerResidue)
		}
		c.Text(o.X, o.Y, s.Label, theme.Text, layerLabel)
	}
}
