package viz

import "math"

const (
	// MaxSpeed is the top of the v axis in m/s.
	MaxSpeed = 4.0

	// HeightPerX converts the graph's s axis to the regression input h = x/2.
	// The fitted curves are drawn against this fixed scale rather than the
	// preset geometry.
	HeightPerX = 0.5

	CurveSamples = 100

	graphMargin = 5 // dots (20px)
)

// Graph maps (s, v) values into a canvas of W x H dots.
type Graph struct {
	W, H   int
	Margin int
	MaxS   float64
	MaxV   float64
}

func NewGraph(c *Canvas, maxS float64) *Graph {
	w, h := c.Dots()
	return &Graph{W: w, H: h, Margin: graphMargin, MaxS: maxS, MaxV: MaxSpeed}
}

func (g *Graph) X(s float64) float64 {
	return float64(g.Margin) + s/g.MaxS*float64(g.W-2*g.Margin)
}

func (g *Graph) Y(v float64) float64 {
	return float64(g.H-g.Margin) - v/g.MaxV*float64(g.H-2*g.Margin)
}

func (g *Graph) dot(s, v float64) (int, int) {
	return int(math.Round(g.X(s))), int(math.Round(g.Y(v)))
}

// DrawAxes draws the s axis and the v axis.
func (g *Graph) DrawAxes(c *Canvas) {
	c.DrawLine(0, g.H-g.Margin, g.W-1, g.H-g.Margin)
	c.DrawLine(g.Margin, 0, g.Margin, g.H-1)
}

// Scatter plots samples with s <= MaxS; the rest are skipped.
func (g *Graph) Scatter(c *Canvas, samples []Point) {
	for _, p := range samples {
		if p.X > g.MaxS {
			continue
		}
		x, y := g.dot(p.X, p.Y)
		c.Set(x, y)
	}
}

// Curve samples f at CurveSamples points across [0, MaxS], with the x value
// converted to a height by HeightPerX.
func (g *Graph) Curve(f func(h float64) float64) []Point {
	pts := make([]Point, CurveSamples)
	for i := range pts {
		x := g.MaxS * float64(i) / float64(CurveSamples-1)
		pts[i] = Point{X: x, Y: f(x * HeightPerX)}
	}
	return pts
}

// Polyline joins consecutive (s, v) points.
func (g *Graph) Polyline(c *Canvas, pts []Point) {
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := g.dot(pts[i].X, pts[i].Y)
		x1, y1 := g.dot(pts[i+1].X, pts[i+1].Y)
		c.DrawLine(x0, y0, x1, y1)
	}
}

// Marker draws the highlighted experimental point.
func (g *Graph) Marker(c *Canvas, s, v float64) {
	x, y := g.dot(s, v)
	c.Disc(x, y, 1)
}
