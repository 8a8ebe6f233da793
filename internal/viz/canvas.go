package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// DotSize is the pixel width and height of one braille dot: a cell is 8x16
// pixels and holds 2x4 dots.
const DotSize = 4

// Canvas is a braille dot grid Width x Height cells in size, addressed in
// dots ((Width*2) x (Height*4)) or in pixels through the Px helpers.
type Canvas struct {
	Width, Height int
	bits          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, bits: make([][]rune, h)}
	for i := range c.bits {
		c.bits[i] = make([]rune, w)
	}
	return c
}

func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.bits[row][col] |= dotBits[y%4][x%2]
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.bits[y/4][x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.bits {
		for j := range c.bits[i] {
			c.bits[i][j] = 0
		}
	}
}

// Rune returns the braille character of a cell, or 0 when no dot is set.
func (c *Canvas) Rune(col, row int) rune {
	b := c.bits[row][col]
	if b == 0 {
		return 0
	}
	return brailleBase + b
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect sets every dot in the inclusive box.
func (c *Canvas) FillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y)
		}
	}
}

// Disc sets the dots within r of (cx, cy).
func (c *Canvas) Disc(cx, cy, r int) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.Set(cx+x, cy+y)
			}
		}
	}
}

func (c *Canvas) LinePx(a, b Point) {
	c.DrawLine(toDot(a.X), toDot(a.Y), toDot(b.X), toDot(b.Y))
}

func (c *Canvas) FillRectPx(r RectF) {
	c.FillRect(toDot(r.X), toDot(r.Y), toDot(r.X+r.W)-1, toDot(r.Y+r.H)-1)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.bits {
		for col := range c.bits[row] {
			if r := c.Rune(col, row); r != 0 {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func toDot(px float64) int {
	return int(math.Floor(px / DotSize))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
