package viz

import (
	"math"

	"github.com/san-kum/incline/internal/kinematics"
)

const (
	PhysicalMax = 2.5   // m, longest plane drawn
	PixelMax    = 400.0 // px, on-screen length of PhysicalMax
	TickSpacing = 0.5   // m

	blockSize = 30.0
)

// Scene maps displacement along the incline to window pixels. The block
// starts at Origin and moves right and up the screen as s grows.
type Scene struct {
	Origin Point
}

func NewScene() *Scene {
	// bottom-left of the 600x668 scene area below the header, inset by 50px
	return &Scene{Origin: Point{X: 50, Y: 718}}
}

func (sc *Scene) ToPixel(s float64) Point {
	px := s / PhysicalMax * PixelMax
	return Point{
		X: sc.Origin.X + px*kinematics.CosTheta,
		Y: sc.Origin.Y - px*kinematics.SinTheta,
	}
}

func (sc *Scene) End() Point { return sc.ToPixel(PhysicalMax) }

// Ticks are the marks every half metre from 0 to PhysicalMax inclusive.
func (sc *Scene) Ticks() []Point {
	n := int(math.Round(PhysicalMax/TickSpacing)) + 1
	ticks := make([]Point, n)
	for i := range ticks {
		ticks[i] = sc.ToPixel(float64(i) * TickSpacing)
	}
	return ticks
}

// Block is the square centred on the block's current position.
func (sc *Scene) Block(s float64) RectF {
	p := sc.ToPixel(s)
	return RectF{X: p.X - blockSize/2, Y: p.Y - blockSize/2, W: blockSize, H: blockSize}
}

// DrawIncline draws the plane and its tick marks.
func (sc *Scene) DrawIncline(c *Canvas) {
	start, end := sc.Origin, sc.End()
	c.LinePx(start, end)
	// second stroke one dot lower for thickness
	c.LinePx(Point{start.X, start.Y + DotSize}, Point{end.X, end.Y + DotSize})

	for _, t := range sc.Ticks() {
		c.Disc(toDot(t.X), toDot(t.Y)+2, 1)
	}
}

func (sc *Scene) DrawBlock(c *Canvas, s float64) {
	c.FillRectPx(sc.Block(s))
}
