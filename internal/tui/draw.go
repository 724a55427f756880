package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jask/cafferot/internal/present"
	"github.com/jask/cafferot/internal/scene"
	"github.com/jask/cafferot/internal/viewport"
)

// drawMap paints the session into a w×h grid under the displayed camera.
func drawMap(s *scene.Session, shown viewport.State, w, h int) *grid {
	g := newGrid(w, h)
	if w <= 0 || h <= 0 {
		return g
	}
	fw, fh := float64(w), float64(h)
	project := func(px, py float64) (float64, float64) {
		return shown.ToScreen(px/100*fw, py/100*fh)
	}

	cx, cy := project(50, 50)
	for _, r := range present.GridRings {
		k := r / 100 * math.Sqrt2 / 2 * shown.Zoom
		g.ellipse(cx, cy, k*fw, k*fh, stRing)
	}
	for _, c := range s.Connectors() {
		x0, y0 := project(c.From.X, c.From.Y)
		x1, y1 := project(c.To.X, c.To.Y)
		g.dashed(x0, y0, x1, y1, stConnector)
	}

	specs := s.Render()
	var raised *present.RenderSpec
	for i := range specs {
		if specs[i].Raised {
			raised = &specs[i]
			continue
		}
		drawCard(g, specs[i], shown, fw, fh, specs[i].ID == s.Selected())
	}
	if raised != nil {
		drawCard(g, *raised, shown, fw, fh, true)
		if raised.HoverCard {
			drawHoverCard(g, *raised, shown, fw, fh)
		}
	}
	return g
}

// cardRect returns the cell rectangle covered by a card at the displayed camera.
func cardRect(spec present.RenderSpec, shown viewport.State, fw, fh float64) (x0, y0, x1, y1 int) {
	r := present.CellRect(spec.Slot, spec.Tier, shown, fw, fh)
	return r.X0, r.Y0, r.X1, r.Y1
}

func drawCard(g *grid, spec present.RenderSpec, shown viewport.State, fw, fh float64, highlight bool) {
	x0, y0, x1, y1 := cardRect(spec, shown, fw, fh)
	border, fill := stCafeBorder, stCafeFill
	switch {
	case highlight:
		border = stSelectedBorder
	case spec.Primary:
		border = stPrimaryBorder
	}
	if spec.Primary {
		fill = stPrimaryFill
	}
	g.box(x0, y0, x1, y1, border, fill)

	if y1-y0 < 2 || x1-x0 < 2 {
		g.centered(x0, x1, (y0+y1)/2, spec.Name, fill)
		return
	}

	ix0, ix1 := x0+1, x1-1
	rows := y1 - y0 - 1
	var lines []func(y int)
	text := func(s string, st styleKey) func(int) {
		return func(y int) { g.centered(ix0, ix1, y, s, st) }
	}
	if spec.Detail == present.DetailExpanded {
		lines = append(lines, func(y int) { drawFrames(g, ix0, ix1, y, spec.Frames) })
		lines = append(lines, text(spec.Name, fill))
		lines = append(lines, text(fmt.Sprintf("Lv.%d", spec.Level), fill))
		if spec.Primary {
			lines = append(lines, text("your cafe", fill))
		}
		lines = append(lines, text(fmt.Sprintf("on display %d/%d", min(spec.SubItems, present.FrameCount), present.FrameCount), fill))
		lines = append(lines, text(actionLabels(spec.Actions), stAction))
	} else {
		lines = append(lines, text(spec.Name, fill))
		lines = append(lines, text(fmt.Sprintf("Lv.%d", spec.Level), fill))
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	top := y0 + 1 + (rows-len(lines))/2
	for i, draw := range lines {
		draw(top + i)
	}
}

func drawFrames(g *grid, x0, x1, y int, frames [present.FrameCount]bool) {
	const cellW = 4
	total := present.FrameCount*cellW - 1
	x := x0 + max((x1-x0+1-total)/2, 0)
	for _, filled := range frames {
		if filled {
			g.text(x, y, "[■]", stFrameFilled, x1-x+1)
		} else {
			g.text(x, y, "[ ]", stFrameEmpty, x1-x+1)
		}
		x += cellW
	}
}

func actionLabels(actions []present.Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		s := string(a)
		parts = append(parts, "["+s[:1]+"]"+s[1:])
	}
	return strings.Join(parts, " ")
}

func drawHoverCard(g *grid, spec present.RenderSpec, shown viewport.State, fw, fh float64) {
	x0, _, x1, y1 := cardRect(spec, shown, fw, fh)
	title := spec.Name
	if spec.Primary {
		title += " (yours)"
	}
	detail := fmt.Sprintf("Level %d · %d on display", spec.Level, spec.SubItems)
	w := max(runewidth.StringWidth(title), runewidth.StringWidth(detail)) + 4
	mid := (x0 + x1) / 2
	hx0 := mid - w/2
	hx1 := hx0 + w - 1
	hy0 := y1 + 1
	g.box(hx0, hy0, hx1, hy0+3, stHoverCard, stHoverCard)
	g.centered(hx0+1, hx1-1, hy0+1, title, stHoverCard)
	g.centered(hx0+1, hx1-1, hy0+2, detail, stHoverCard)
}
