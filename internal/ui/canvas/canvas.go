// Package canvas rasterises a continuous 2-D scene onto a grid of terminal
// cells. World coordinates are scaled independently on each axis so the
// whole scene always fits the cell grid.
package canvas

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

type cell struct {
	r     rune
	fg    color.Color
	layer int
}

// Canvas is a fixed-size grid of cells mapped onto a world rectangle.
type Canvas struct {
	cols, rows     int
	worldW, worldH float64
	cells          []cell
}

// New creates a cols x rows canvas showing the world rectangle
// [0, worldW] x [0, worldH].
func New(cols, rows int, worldW, worldH float64) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		worldW: worldW,
		worldH: worldH,
		cells:  make([]cell, cols*rows),
	}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', layer: -1}
	}
	return c
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Cell maps a world point to a grid position. ok is false when the point
// falls outside the grid.
func (c *Canvas) Cell(x, y float64) (col, row int, ok bool) {
	col = int(math.Round(x / c.worldW * float64(c.cols-1)))
	row = int(math.Round(y / c.worldH * float64(c.rows-1)))
	ok = col >= 0 && col < c.cols && row >= 0 && row < c.rows
	return col, row, ok
}

// Set writes r at a grid position if layer is at least the layer already
// there. Higher layers draw over lower ones regardless of call order.
func (c *Canvas) Set(col, row int, r rune, fg color.Color, layer int) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	i := row*c.cols + col
	if layer < c.cells[i].layer {
		return
	}
	c.cells[i] = cell{r: r, fg: fg, layer: layer}
}

// At returns the rune at a grid position.
func (c *Canvas) At(col, row int) rune {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].r
}

// Plot draws r at a world point.
func (c *Canvas) Plot(x, y float64, r rune, fg color.Color, layer int) {
	if col, row, ok := c.Cell(x, y); ok {
		c.Set(col, row, r, fg, layer)
	}
}

// Line draws a straight segment between two world points with
// Bresenham's algorithm on the cell grid.
func (c *Canvas) Line(x0, y0, x1, y1 float64, r rune, fg color.Color, layer int) {
	c0, r0, _ := c.Cell(x0, y0)
	c1, r1, _ := c.Cell(x1, y1)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(c0, r0, r, fg, layer)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

// Circle draws the outline of a circle of world radius radius.
func (c *Canvas) Circle(cx, cy, radius float64, r rune, fg color.Color, layer int) {
	steps := max(int(2*math.Pi*radius/4), 16)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Plot(cx+radius*math.Cos(a), cy+radius*math.Sin(a), r, fg, layer)
	}
}

// Text writes s starting at a world point, clipped to the grid.
func (c *Canvas) Text(x, y float64, s string, fg color.Color, layer int) {
	col, row, _ := c.Cell(x, y)
	for i, r := range []rune(s) {
		c.Set(col+i, row, r, fg, layer)
	}
}

// Render returns the grid as styled lines. Runs of cells sharing a colour
// are styled together.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := range c.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && sameColor(line[i].fg, line[start].fg) {
				continue
			}
			b.WriteString(renderRun(line[start:i]))
			start = i
		}
	}
	return b.String()
}

func renderRun(run []cell) string {
	rs := make([]rune, len(run))
	for i, cl := range run {
		rs[i] = cl.r
	}
	if run[0].fg == nil {
		return string(rs)
	}
	return lipgloss.NewStyle().Foreground(run[0].fg).Render(string(rs))
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
