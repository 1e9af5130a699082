package geometry

import "math"

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Box is a rectangle in bottom-left-origin canvas space.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Left returns the x coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y }

// Top returns the y coordinate of the top edge.
func (b Box) Top() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Origin returns the bottom-left corner.
func (b Box) Origin() Point { return Point{b.X, b.Y} }

// Translate returns b shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}

// Inset shrinks b by d on every side. Negative d grows it.
func (b Box) Inset(d float64) Box {
	return Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

// Contains reports whether o lies entirely within b, with eps tolerance.
func (b Box) Contains(o Box, eps float64) bool {
	return o.Left() >= b.Left()-eps && o.Right() <= b.Right()+eps &&
		o.Bottom() >= b.Bottom()-eps && o.Top() <= b.Top()+eps
}

// Approx reports whether every field of b and o differs by at most eps.
func (b Box) Approx(o Box, eps float64) bool {
	return math.Abs(b.X-o.X) <= eps && math.Abs(b.Y-o.Y) <= eps &&
		math.Abs(b.W-o.W) <= eps && math.Abs(b.H-o.H) <= eps
}

// PageBox is a rectangle in top-left-origin page space, relative to the
// paper's top-left corner.
type PageBox struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
	W    float64 `json:"width"`
	H    float64 `json:"height"`
}

// ToPage converts a paper-local canvas box to page space.
// The box must already be relative to the paper's bottom-left corner.
func ToPage(b Box, paperH float64) PageBox {
	return PageBox{Left: b.X, Top: paperH - b.Y - b.H, W: b.W, H: b.H}
}

// FromPage converts a page box back to paper-local canvas space.
// FromPage(ToPage(b)) equals b exactly for dyadic values; other inputs may
// come back a few ULPs of paperH off in Y.
func FromPage(pb PageBox, paperH float64) Box {
	return Box{X: pb.Left, Y: paperH - pb.Top - pb.H, W: pb.W, H: pb.H}
}
