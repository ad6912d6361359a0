package tessellate

import "github.com/gucio321/svgpoly/pkg/geom"

// bezierInterpolate evaluates the cubic bezier p0..p3 at t (0 <= t <= 1):
// B(t) = (1-t)³p0 + 3t(1-t)²p1 + 3t²(1-t)p2 + t³p3
func bezierInterpolate(t float64, p0, p1, p2, p3 geom.Point) geom.Point {
	t1 := 1 - t
	t12 := t1 * t1
	t13 := t12 * t1
	t2 := t * t
	t3 := t2 * t

	return geom.Point{
		X: t13*p0.X + 3*t*t12*p1.X + 3*t2*t1*p2.X + t3*p3.X,
		Y: t13*p0.Y + 3*t*t12*p1.Y + 3*t2*t1*p2.Y + t3*p3.Y,
	}
}

// CubicBezier appends samples of the curve p0..p3 to dst.
// p0 is not appended: it is the current point, already in dst.
// Samples are taken at t = step, 2*step, ... while t < 1 and the exact p3 always ends the run.
func (t *Tessellator) CubicBezier(dst geom.Polyline, p0, p1, p2, p3 geom.Point) geom.Polyline {
	for i := 1; ; i++ {
		u := float64(i) * t.step
		if u >= 1 {
			break
		}

		dst = append(dst, bezierInterpolate(u, p0, p1, p2, p3))
	}

	return append(dst, p3)
}
