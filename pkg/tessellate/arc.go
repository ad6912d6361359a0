package tessellate

import (
	"math"

	"github.com/kpango/glg"

	"github.com/gucio321/svgpoly/pkg/geom"
)

const (
	// arcEpsilon is the smallest chord or radius that still makes an arc.
	arcEpsilon = 1e-6
	// halfCircleEpsilon snaps rounding errors of half circles.
	halfCircleEpsilon = 0.001
)

// ArcParams is an SVG endpoint-parameterized elliptical arc.
type ArcParams struct {
	RX, RY float64
	// Rotation of the ellipse x axis, in degrees.
	Rotation float64
	LargeArc bool
	Sweep    bool
	End      geom.Point
}

// Arc appends the tessellation of an arc starting at start to dst.
// Like CubicBezier, start itself is not appended.
//
// refer: http://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
func (t *Tessellator) Arc(dst geom.Polyline, start geom.Point, arc ArcParams) geom.Polyline {
	rx, ry := arc.RX, arc.RY
	end := arc.End

	if d := start.Distance(end); d < arcEpsilon || rx < arcEpsilon || ry < arcEpsilon {
		glg.Debugf("Arc from %v to %v (rx %g, ry %g) degenerates to a line", start, end, rx, ry)
		return append(dst, end)
	}

	rotation := geom.Rotate(geom.DegToRad(arc.Rotation))
	sinrx, cosrx := rotation[1][0], rotation[0][0]

	// 1.0: compute (x1', y1'), the half chord in the ellipse frame
	half := start.Sub(end).Mul(0.5)
	x1p := cosrx*half.X + sinrx*half.Y
	y1p := -sinrx*half.X + cosrx*half.Y

	// 1.1: radii too small to span the chord are scaled up
	if lambda := sqr(x1p)/sqr(rx) + sqr(y1p)/sqr(ry); lambda > 1 {
		lambda = math.Sqrt(lambda)
		rx *= lambda
		ry *= lambda
	}

	// 2.0: compute (cx', cy')
	sa := sqr(rx)*sqr(ry) - sqr(rx)*sqr(y1p) - sqr(ry)*sqr(x1p)
	sb := sqr(rx)*sqr(y1p) + sqr(ry)*sqr(x1p)
	if sa < 0 {
		sa = 0
	}

	var s float64
	if sb > 0 {
		s = math.Sqrt(sa / sb)
	}

	if arc.LargeArc == arc.Sweep {
		s = -s
	}

	cxp := s * rx * y1p / ry
	cyp := s * -ry * x1p / rx

	// 3.0: compute the center from (cx', cy')
	mid := start.Add(end).Mul(0.5)
	center := mid.Add(rotation.Apply(geom.Pt(cxp, cyp)))

	// 4.0: start angle and delta angle
	u := geom.Pt((x1p-cxp)/rx, (y1p-cyp)/ry)
	v := geom.Pt((-x1p-cxp)/rx, (-y1p-cyp)/ry)
	a1 := vectorAngle(geom.Pt(1, 0), u)
	da := vectorAngle(u, v)

	// 4.1: large arc means going the long way around
	if arc.LargeArc {
		if da > 0 {
			da -= 2 * math.Pi
		} else {
			da += 2 * math.Pi
		}
	}

	// 4.2: sweep gives the direction
	switch {
	case arc.Sweep && da < 0:
		da += 2 * math.Pi
	case !arc.Sweep && da > 0:
		da -= 2 * math.Pi
	}

	// 4.3: rounding errors for half circles
	if math.Abs(math.Pi-math.Abs(da)) < halfCircleEpsilon {
		if arc.Sweep {
			da = math.Pi
		} else {
			da = -math.Pi
		}
	}

	// 5.0: split into segments of at most 90 degrees, each approximated by a cubic
	ndivs := int(math.Ceil(math.Abs(da)/(math.Pi/2) - 1e-9))
	if ndivs < 1 {
		ndivs = 1
	}

	hda := da / float64(ndivs) / 2
	if math.Sin(hda) == 0 {
		glg.Debugf("Arc from %v to %v has no sweep angle, drawing a line", start, end)
		return append(dst, end)
	}

	kappa := math.Abs(4.0 / 3.0 * (1 - math.Cos(hda)) / math.Sin(hda))
	if da < 0 {
		kappa = -kappa
	}

	frame := geom.Translate(center.X, center.Y).Mul(rotation)

	var prev, prevTangent geom.Point
	for i := 0; i <= ndivs; i++ {
		a := a1 + da*float64(i)/float64(ndivs)
		sin, cos := math.Sincos(a)

		p := frame.Apply(geom.Pt(cos*rx, sin*ry))
		tangent := rotation.Apply(geom.Pt(-sin*rx*kappa, cos*ry*kappa))

		if i > 0 {
			dst = t.CubicBezier(dst, prev, prev.Add(prevTangent), p.Sub(tangent), p)
		}

		prev, prevTangent = p, tangent
	}

	return dst
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(u, v geom.Point) float64 {
	return math.Atan2(u.X*v.Y-u.Y*v.X, u.X*v.X+u.Y*v.Y)
}

func sqr(x float64) float64 {
	return x * x
}
