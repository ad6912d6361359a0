// Package geom holds the small 2D vocabulary shared by the svgpoly packages.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D point (or vector) in drawing coordinates.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

// Distance returns euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Near reports whether other lies strictly closer than tol to p.
// Squared distances are compared so no sqrt is taken.
func (p Point) Near(other Point, tol float64) bool {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx+dy*dy < tol*tol
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Polyline is an ordered point sequence. Order gives the traversal direction.
type Polyline []Point

// First returns the first point. Polyline must not be empty.
func (p Polyline) First() Point {
	return p[0]
}

// Last returns the last point. Polyline must not be empty.
func (p Polyline) Last() Point {
	return p[len(p)-1]
}

// IsClosed reports whether the first and last points coincide within tol.
func (p Polyline) IsClosed(tol float64) bool {
	if len(p) < 2 {
		return false
	}

	return p.First().Near(p.Last(), tol)
}

// Clone returns a copy that does not share memory with p.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}

	result := make(Polyline, len(p))
	copy(result, p)

	return result
}

// Reverse reverses p in place.
func (p Polyline) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
