package tui

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell. A zero rune marks the trailing half of a wide
// rune and is skipped when rendering.
type cell struct {
	r  rune
	st styleKey
}

// grid is a fixed-size cell buffer the map is painted into before styling.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	w, h = max(w, 0), max(h, 0)
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', st: stCanvas}
	}
	return g
}

func (g *grid) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *grid) at(x, y int) cell {
	if !g.in(x, y) {
		return cell{}
	}
	return g.cells[y*g.w+x]
}

func (g *grid) set(x, y int, r rune, st styleKey) {
	if !g.in(x, y) {
		return
	}
	i := y*g.w + x
	// Overwriting either half of a wide rune blanks the other half.
	if r != 0 {
		if g.cells[i].r == 0 && x > 0 {
			g.cells[i-1] = cell{r: ' ', st: g.cells[i-1].st}
		} else if x+1 < g.w && g.cells[i+1].r == 0 {
			g.cells[i+1] = cell{r: ' ', st: g.cells[i+1].st}
		}
	}
	g.cells[i] = cell{r: r, st: st}
}

// text writes s starting at (x, y), clipped to maxW cells, and returns the
// number of cells written.
func (g *grid) text(x, y int, s string, st styleKey, maxW int) int {
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if used+rw > maxW {
			break
		}
		if rw == 2 && !g.in(x+used+1, y) {
			break
		}
		g.set(x+used, y, r, st)
		if rw == 2 {
			g.set(x+used+1, y, 0, st)
		}
		used += rw
	}
	return used
}

// centered writes s centered between x0 and x1 inclusive.
func (g *grid) centered(x0, x1, y int, s string, st styleKey) {
	width := x1 - x0 + 1
	if width <= 0 {
		return
	}
	sw := min(runewidth.StringWidth(s), width)
	g.text(x0+(width-sw)/2, y, s, st, width)
}

// fill paints the rectangle [x0,x1]×[y0,y1] with blanks in style st.
func (g *grid) fill(x0, y0, x1, y1 int, st styleKey) {
	for y := max(y0, 0); y <= min(y1, g.h-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.w-1); x++ {
			g.set(x, y, ' ', st)
		}
	}
}

// box draws a rounded border around [x0,x1]×[y0,y1] with a filled interior.
func (g *grid) box(x0, y0, x1, y1 int, border, inner styleKey) {
	if x1 < x0 || y1 < y0 {
		return
	}
	g.fill(x0, y0, x1, y1, inner)
	if x1-x0 < 1 || y1-y0 < 1 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		g.set(x, y0, '─', border)
		g.set(x, y1, '─', border)
	}
	for y := y0 + 1; y < y1; y++ {
		g.set(x0, y, '│', border)
		g.set(x1, y, '│', border)
	}
	g.set(x0, y0, '╭', border)
	g.set(x1, y0, '╮', border)
	g.set(x0, y1, '╰', border)
	g.set(x1, y1, '╯', border)
}

// dashed draws a dashed line from (x0,y0) to (x1,y1), only over blank cells.
func (g *grid) dashed(x0, y0, x1, y1 float64, st styleKey) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		return
	}
	r := lineRune(dx, dy)
	for i := 0; i <= steps; i++ {
		if (i/2)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		x := int(math.Floor(x0 + dx*t))
		y := int(math.Floor(y0 + dy*t))
		if c := g.at(x, y); g.in(x, y) && (c.st == stCanvas || c.st == stRing) {
			g.set(x, y, r, st)
		}
	}
}

// ellipse traces an ellipse outline with dots over blank cells.
func (g *grid) ellipse(cx, cy, rx, ry float64, st styleKey) {
	if rx <= 0 || ry <= 0 {
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Floor(cx + rx*math.Cos(a)))
		y := int(math.Floor(cy + ry*math.Sin(a)))
		if g.in(x, y) && g.at(x, y).st == stCanvas {
			g.set(x, y, '·', st)
		}
	}
}

func lineRune(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay*2 < ax:
		return '─'
	case ax*2 < ay:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// render styles every row with the theme, batching runs of equal style.
func (g *grid) render(t Theme) string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := styleKey(255)
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(t.cell(cur).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			if c.r == 0 {
				continue
			}
			if c.st != cur {
				flush()
				cur = c.st
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// plain returns the grid's runes without styling.
func (g *grid) plain() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if r := g.cells[y*g.w+x].r; r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
