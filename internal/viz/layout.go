package viz

import "github.com/san-kum/incline/internal/config"

const buttonWidth = 19

// Target identifies the widget under a mouse position.
type Target struct {
	Kind  TargetKind
	Index int
}

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPreset
	TargetToggle
	TargetReset
)

// Layout places every panel and widget on the terminal grid.
type Layout struct {
	Cols, Rows int
	Scene      Rect
	Panel      Rect
	Presets    []Rect
	Toggle     Rect
	Reset      Rect
	Graph      Rect
	Readout    Rect
}

func NewLayout(cfg *config.Config) Layout {
	cols, rows := cfg.Cols(), cfg.Rows()
	left := config.LeftPanelWidth / config.CellWidth
	x := left + 3

	l := Layout{
		Cols:  cols,
		Rows:  rows,
		Scene: Rect{X: 0, Y: 0, W: left, H: rows},
		Panel: Rect{X: left, Y: 0, W: cols - left, H: rows},
	}
	for i := range cfg.Presets {
		l.Presets = append(l.Presets, Rect{X: x, Y: 3 + 2*i, W: buttonWidth, H: 1})
	}
	next := 3 + 2*len(cfg.Presets) + 1
	l.Toggle = Rect{X: x, Y: next, W: buttonWidth, H: 1}
	l.Reset = Rect{X: x, Y: next + 2, W: buttonWidth, H: 1}
	l.Graph = Rect{X: x, Y: next + 4, W: cols - x - 2, H: 12}
	l.Readout = Rect{X: x, Y: l.Graph.Y + l.Graph.H + 2, W: cols - x - 2, H: rows - (l.Graph.Y + l.Graph.H + 2)}
	return l
}

// HitTest finds the button at cell (x, y).
func (l Layout) HitTest(x, y int) Target {
	for i, r := range l.Presets {
		if r.Contains(x, y) {
			return Target{Kind: TargetPreset, Index: i}
		}
	}
	if l.Toggle.Contains(x, y) {
		return Target{Kind: TargetToggle}
	}
	if l.Reset.Contains(x, y) {
		return Target{Kind: TargetReset}
	}
	return Target{Kind: TargetNone}
}

// Button draws a one-line button with its label centred.
func (s *Screen) Button(r Rect, label string, ink Ink) {
	s.Fill(r, ' ', ink)
	text := []rune(label)
	if len(text) > r.W {
		text = text[:r.W]
	}
	s.Text(r.X+(r.W-len(text))/2, r.Y, string(text), ink)
}
