// Package tessellate converts expanded path commands into polylines.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/svgpoly/pkg/geom"
	"github.com/gucio321/svgpoly/pkg/pathdata"
)

const (
	// DefaultSamples is the default number of samples per bezier curve.
	DefaultSamples = 10
	// closeEpsilon is the distance below which a close command is a no-op.
	closeEpsilon = 1e-5
)

var ErrUnsupportedCommand = errors.New("unsupported command")

// Config is the tessellation resolution.
type Config struct {
	// Samples per bezier curve (arcs use it per 90 degree segment).
	// Zero is treated as 1.
	Samples uint
}

// DefaultConfig returns Config with DefaultSamples.
func DefaultConfig() Config {
	return Config{Samples: DefaultSamples}
}

// Tessellator samples path commands into polylines.
// It is immutable, so one Tessellator may serve many goroutines.
type Tessellator struct {
	step float64
}

// New creates a Tessellator for cfg.
func New(cfg Config) *Tessellator {
	return &Tessellator{
		step: 1 / float64(max(1, cfg.Samples)),
	}
}

// Step returns the bezier parameter step (1/Samples).
func (t *Tessellator) Step() float64 {
	return t.step
}

// Path tessellates all subpaths of one path, in order, returning one polyline per subpath.
// The current point carries over from one subpath to the next.
// If m is not the identity, every point is transformed by it.
//
// Unsupported commands are skipped with a warning; a command whose argument count
// does not match its arity returns an error (run pathdata.Expand first).
func (t *Tessellator) Path(subpaths []pathdata.Subpath, m geom.Matrix) ([]geom.Polyline, error) {
	result := make([]geom.Polyline, 0, len(subpaths))

	var last geom.Point
	for i, subpath := range subpaths {
		var (
			polyline geom.Polyline
			err      error
		)

		polyline, last, err = t.Subpath(subpath, last)
		if err != nil {
			return nil, fmt.Errorf("cant tessellate subpath %d: %w", i, err)
		}

		result = append(result, polyline)
	}

	if !m.IsIdentity() {
		m.ApplyAll(result)
	}

	return result, nil
}

// Subpath tessellates one subpath starting from the current point last.
// It returns the polyline and the new current point.
func (t *Tessellator) Subpath(subpath pathdata.Subpath, last geom.Point) (geom.Polyline, geom.Point, error) {
	var polyline geom.Polyline

	for _, cmd := range subpath {
		if len(cmd.Args) != cmd.Kind.Arity() {
			return nil, last, &pathdata.MalformedCommandError{Command: cmd}
		}

		a := cmd.Args

		switch cmd.Kind {
		case pathdata.KindMove, pathdata.KindLine:
			p := t.point(cmd, last, a[0], a[1])
			polyline = append(polyline, p)
			last = p
		case pathdata.KindCubicCurve:
			p1 := t.point(cmd, last, a[0], a[1])
			p2 := t.point(cmd, last, a[2], a[3])
			p3 := t.point(cmd, last, a[4], a[5])
			polyline = t.CubicBezier(polyline, last, p1, p2, p3)
			last = p3
		case pathdata.KindArc:
			arc := ArcParams{
				RX:       a[0],
				RY:       a[1],
				Rotation: a[2],
				LargeArc: int(a[3]) != 0,
				Sweep:    int(a[4]) != 0,
				End:      t.point(cmd, last, a[5], a[6]),
			}
			polyline = t.Arc(polyline, last, arc)
			last = arc.End
		case pathdata.KindClose:
			if len(polyline) == 0 {
				continue
			}

			// just add the first point to the list
			if first := polyline.First(); polyline.Last().Distance(first) > closeEpsilon {
				polyline = append(polyline, first)
			}

			last = polyline.Last()
		default:
			glg.Warnf("%v: skipping %q", ErrUnsupportedCommand, cmd)
		}
	}

	return polyline, last, nil
}

// point resolves (x, y) of cmd, relative to last if cmd is relative.
func (t *Tessellator) point(cmd pathdata.Command, last geom.Point, x, y float64) geom.Point {
	p := geom.Pt(x, y)
	if cmd.Relative {
		p = p.Add(last)
	}

	return p
}
