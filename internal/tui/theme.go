package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes: Mocha for dark mode, Latte for light mode
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	Peach, Yellow, Green, Teal, Blue, Lavender, Red lipgloss.Color
	Text, Subtext, Overlay, Surface1, Surface0      lipgloss.Color
	Base, Mantle, Crust                             lipgloss.Color
}

var mocha = palette{
	Peach:    "#fab387",
	Yellow:   "#f9e2af",
	Green:    "#a6e3a1",
	Teal:     "#94e2d5",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",
	Red:      "#f38ba8",
	Text:     "#cdd6f4",
	Subtext:  "#a6adc8",
	Overlay:  "#6c7086",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Crust:    "#11111b",
}

var latte = palette{
	Peach:    "#fe640b",
	Yellow:   "#df8e1d",
	Green:    "#40a02b",
	Teal:     "#179299",
	Blue:     "#1e66f5",
	Lavender: "#7287fd",
	Red:      "#d20f39",
	Text:     "#4c4f69",
	Subtext:  "#6c6f85",
	Overlay:  "#9ca0b0",
	Surface1: "#bcc0cc",
	Surface0: "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Crust:    "#dce0e8",
}

// styleKey identifies the style of one canvas cell.
type styleKey uint8

const (
	stCanvas styleKey = iota
	stRing
	stConnector
	stPrimaryBorder
	stPrimaryFill
	stCafeBorder
	stCafeFill
	stSelectedBorder
	stFrameFilled
	stFrameEmpty
	stAction
	stHoverCard
	styleCount
)

// Theme maps cell styles and chrome styles for one mode.
type Theme struct {
	Dark   bool
	cells  [styleCount]lipgloss.Style
	Header lipgloss.Style
	Button lipgloss.Style
	Footer lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// NewTheme builds the dark (Mocha) or light (Latte) theme. Light mode uses
// the warm peach/yellow accents, dark mode the cool blue ones.
func NewTheme(dark bool) Theme {
	p, accent, primary := latte, latte.Peach, latte.Yellow
	if dark {
		p, accent, primary = mocha, mocha.Overlay, mocha.Blue
	}
	bg := lipgloss.NewStyle().Background(p.Base)
	fill := lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text)

	t := Theme{Dark: dark}
	t.cells[stCanvas] = bg.Foreground(p.Text)
	t.cells[stRing] = bg.Foreground(p.Surface0)
	t.cells[stConnector] = bg.Foreground(p.Surface1)
	t.cells[stPrimaryBorder] = fill.Foreground(primary).Bold(true)
	t.cells[stPrimaryFill] = fill.Bold(true)
	t.cells[stCafeBorder] = fill.Foreground(accent)
	t.cells[stCafeFill] = fill
	t.cells[stSelectedBorder] = fill.Foreground(p.Lavender).Bold(true)
	t.cells[stFrameFilled] = fill.Foreground(p.Green)
	t.cells[stFrameEmpty] = fill.Foreground(p.Overlay)
	t.cells[stAction] = fill.Foreground(p.Teal).Underline(true)
	t.cells[stHoverCard] = lipgloss.NewStyle().Background(p.Crust).Foreground(p.Subtext)

	t.Header = lipgloss.NewStyle().Background(p.Crust).Foreground(p.Text).Bold(true)
	t.Button = lipgloss.NewStyle().Background(p.Surface0).Foreground(p.Text)
	t.Footer = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Subtext)
	t.Status = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Green)
	t.Error = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Red)
	t.Prompt = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Yellow)
	return t
}

func (t Theme) cell(k styleKey) lipgloss.Style {
	if int(k) >= len(t.cells) {
		return t.cells[stCanvas]
	}
	return t.cells[k]
}
