package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ink selects the style a screen cell is drawn with.
type Ink int

const (
	InkPlain Ink = iota
	InkText
	InkDim
	InkHeader
	InkIncline
	InkBlock
	InkScatter
	InkLinear
	InkPower
	InkMarker
	InkAxis
	InkButton
	InkButtonHover
	InkButtonActive
	InkSuccess
	InkDeviation
	InkDivider
)

type cell struct {
	r   rune
	ink Ink
}

// Screen is a fixed grid of styled cells that text and canvases are
// composed onto before rendering.
type Screen struct {
	W, H  int
	cells [][]cell
}

func NewScreen(w, h int) *Screen {
	s := &Screen{W: w, H: h, cells: make([][]cell, h)}
	for i := range s.cells {
		s.cells[i] = make([]cell, w)
	}
	s.Clear()
	return s
}

func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{' ', InkPlain}
		}
	}
}

func (s *Screen) put(x, y int, r rune, ink Ink) {
	if x >= 0 && x < s.W && y >= 0 && y < s.H {
		s.cells[y][x] = cell{r, ink}
	}
}

// Text writes str starting at (x, y), clipped to the screen.
func (s *Screen) Text(x, y int, str string, ink Ink) {
	for _, r := range str {
		s.put(x, y, r, ink)
		x++
	}
}

// Fill paints r with ch.
func (s *Screen) Fill(r Rect, ch rune, ink Ink) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.put(x, y, ch, ink)
		}
	}
}

// Layer copies the set cells of c onto the screen at (x0, y0). Dots already
// on the screen from an earlier layer are merged and the cell takes ink.
func (s *Screen) Layer(x0, y0 int, c *Canvas, ink Ink) {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Rune(col, row)
			if r == 0 {
				continue
			}
			x, y := x0+col, y0+row
			if x < 0 || x >= s.W || y < 0 || y >= s.H {
				continue
			}
			if prev := s.cells[y][x].r; prev > brailleBase && prev <= brailleBase+0xff {
				r |= prev
			}
			s.cells[y][x] = cell{r, ink}
		}
	}
}

func (s *Screen) At(x, y int) (rune, Ink) {
	c := s.cells[y][x]
	return c.r, c.ink
}

// Row returns the unstyled text of row y.
func (s *Screen) Row(y int) string {
	var b strings.Builder
	for _, c := range s.cells[y] {
		b.WriteRune(c.r)
	}
	return b.String()
}

// Render styles runs of equal ink and joins the rows.
func (s *Screen) Render(p Palette) string {
	var b strings.Builder
	var run strings.Builder
	for y, row := range s.cells {
		cur := row[0].ink
		for _, c := range row {
			if c.ink != cur {
				b.WriteString(p.Style(cur).Render(run.String()))
				run.Reset()
				cur = c.ink
			}
			run.WriteRune(c.r)
		}
		b.WriteString(p.Style(cur).Render(run.String()))
		run.Reset()
		if y < len(s.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Palette maps inks to lipgloss styles.
type Palette map[Ink]lipgloss.Style

func (p Palette) Style(ink Ink) lipgloss.Style {
	if st, ok := p[ink]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
