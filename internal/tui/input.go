package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cafferot/internal/scene"
)

// handleMouse routes terminal mouse events. The header row holds the chrome
// buttons; the map canvas sits between header and footer. Anything that
// leaves the canvas ends a drag like a pointer leaving the map would.
func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	if a.session == nil {
		return nil
	}
	_, ch := a.canvasSize()
	y := m.Y - headerRows
	if y < 0 || float64(y) >= ch || m.X < 0 || m.X >= a.width {
		if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft && m.Y < headerRows {
			switch a.chrome().hit(m.X) {
			case targetCafferots:
				return a.apply(scene.NavigateEvent{Target: targetCafferots})
			case "zoom":
				return a.apply(scene.ResetEvent{})
			}
			return nil
		}
		return a.apply(scene.PointerLeaveEvent{})
	}

	// Pointer coordinates address the centre of the cell.
	px, py := float64(m.X)+0.5, float64(y)+0.5

	switch m.Action {
	case tea.MouseActionPress:
		switch m.Button {
		case tea.MouseButtonWheelUp:
			return a.apply(scene.WheelEvent{DeltaY: -a.cfg.UI.WheelStep})
		case tea.MouseButtonWheelDown:
			return a.apply(scene.WheelEvent{DeltaY: a.cfg.UI.WheelStep})
		case tea.MouseButtonLeft:
			return a.apply(scene.PointerDownEvent{Button: scene.ButtonPrimary, X: px, Y: py})
		case tea.MouseButtonMiddle:
			return a.apply(scene.PointerDownEvent{Button: scene.ButtonMiddle, X: px, Y: py})
		case tea.MouseButtonRight:
			return a.apply(scene.PointerDownEvent{Button: scene.ButtonSecondary, X: px, Y: py})
		}
	case tea.MouseActionMotion:
		return a.apply(scene.PointerMoveEvent{X: px, Y: py})
	case tea.MouseActionRelease:
		return a.apply(scene.PointerUpEvent{X: px, Y: py})
	}
	return nil
}
