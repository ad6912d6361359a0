package svgpoly

import (
	"github.com/gucio321/svgpoly/pkg/geom"
	"github.com/gucio321/svgpoly/pkg/stitch"
)

// PathsToClosedPolylines collects the polylines of all paths and stitches them
// into closed polygons. Chains that never close are returned in open.
// Points closer than tol are treated as the same point.
func PathsToClosedPolylines(paths []*Path, tol float64) (closed, open []geom.Polyline) {
	var polylines []geom.Polyline
	for _, path := range paths {
		if path == nil {
			continue
		}

		polylines = append(polylines, path.Polylines...)
	}

	return stitch.Reconstruct(polylines, tol)
}
