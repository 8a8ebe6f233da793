package viz

type Point struct {
	X, Y float64
}

// RectF is a rectangle in pixels.
type RectF struct {
	X, Y, W, H float64
}

func (r RectF) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
