package geom

import "math"

// Matrix is a 3x3 homogeneous 2D affine matrix, row-major:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// so that x' = a*x + c*y + e and y' = b*x + d*y + f.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Affine embeds the SVG matrix(a,b,c,d,e,f) block.
func Affine(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
		{0, 0, 1},
	}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Affine(1, 0, 0, 1, x, y)
}

// Scale returns a scale by (x, y).
func Scale(x, y float64) Matrix {
	return Affine(x, 0, 0, y, 0, 0)
}

// Rotate returns a rotation about the origin; angle is in radians.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// RotateAbout returns a rotation by angle (radians) around center.
func RotateAbout(angle float64, center Point) Matrix {
	return Translate(center.X, center.Y).
		Mul(Rotate(angle)).
		Mul(Translate(-center.X, -center.Y))
}

// SkewX shears x by tan(angle) (radians).
func SkewX(angle float64) Matrix {
	return Affine(1, 0, math.Tan(angle), 1, 0, 0)
}

// SkewY shears y by tan(angle) (radians).
func SkewY(angle float64) Matrix {
	return Affine(1, math.Tan(angle), 0, 1, 0, 0)
}

// Mul returns m·other. Applied to a point, other acts first.
func (m Matrix) Mul(other Matrix) Matrix {
	var result Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}

	return result
}

// Apply transforms p as the homogeneous point (x, y, 1).
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ApplyAll transforms every point of every polyline in place.
func (m Matrix) ApplyAll(polylines []Polyline) {
	for _, polyline := range polylines {
		for i := range polyline {
			polyline[i] = m.Apply(polyline[i])
		}
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
