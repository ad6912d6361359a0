// Package stitch reconstructs closed polygons from the line segments of many polylines.
//
// Every consecutive point pair of the input polylines becomes a segment.
// Segments are then chained by shared endpoints (within a tolerance) into
// maximal chains: chains whose ends meet are closed polygons, the rest are open.
package stitch

import (
	"github.com/kpango/glg"

	"github.com/gucio321/svgpoly/pkg/geom"
)

// segment is an unordered pair of points.
type segment struct {
	a, b geom.Point
}

// Reconstruct stitches the segments of polylines into closed polygons and open chains.
// Two points are the same when closer than tol.
// A closed polygon repeats its first point at the end.
//
// The search is a direct O(n²) scan over the remaining segments.
// Output order follows input order: chains are seeded from the earliest unused segment.
func Reconstruct(polylines []geom.Polyline, tol float64) (closed, open []geom.Polyline) {
	segments := buildSegments(polylines, tol)

	for len(segments) > 0 {
		// 1.0: start a new chain from the next available segment
		seed := segments[0]
		segments = segments[1:]
		chain := geom.Polyline{seed.a, seed.b}

		// 2.0: grow it from its tail
		var loopClosed bool
		chain, segments, loopClosed = grow(chain, segments, tol)

		// 2.1: the tail is stuck; grow from the head too
		if !loopClosed {
			chain.Reverse()
			chain, segments, loopClosed = grow(chain, segments, tol)
			chain.Reverse()
		}

		// 3.0: the chain is complete
		if loopClosed {
			closed = append(closed, chain)
			continue
		}

		glg.Infof("Line segments that are not part of a closed path have been found "+
			"with the current minimum distance of %g between 2 points (%d points, from %v to %v)",
			tol, len(chain), chain.First(), chain.Last())

		open = append(open, chain)
	}

	return closed, open
}

// buildSegments splits polylines into segments.
// A segment shorter than tol is dropped and the next one starts where the last kept segment ended,
// so dropping never opens a gap.
func buildSegments(polylines []geom.Polyline, tol float64) []segment {
	var result []segment

	for _, polyline := range polylines {
		if len(polyline) == 0 {
			continue
		}

		start := polyline[0]
		for _, end := range polyline[1:] {
			if length := end.Distance(start); length < tol {
				glg.Debugf("Ignoring short segment (length: %g)", length)
				continue
			}

			result = append(result, segment{start, end})
			start = end
		}
	}

	return result
}

// grow appends segments that share an endpoint with the tail of chain until none is left
// or the chain closes on its first point.
// It returns the grown chain, the unused segments and whether the chain closed.
func grow(chain geom.Polyline, segments []segment, tol float64) (geom.Polyline, []segment, bool) {
	for {
		tail := chain.Last()
		found := -1

		var next geom.Point
		for i, s := range segments {
			// if both ends match, b is the shared one
			switch {
			case tail.Near(s.b, tol):
				next = s.a
			case tail.Near(s.a, tol):
				next = s.b
			default:
				continue
			}

			found = i

			break
		}

		if found < 0 {
			return chain, segments, false
		}

		// remove the segment from the remaining ones, keeping their order
		segments = append(segments[:found], segments[found+1:]...)
		chain = append(chain, next)

		if next.Near(chain.First(), tol) {
			return chain, segments, true
		}
	}
}
