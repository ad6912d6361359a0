// Package svgpoly turns SVG path elements into polylines and reconstructs
// closed polygons from them.
package svgpoly

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/svgpoly/pkg/geom"
	"github.com/gucio321/svgpoly/pkg/pathdata"
	"github.com/gucio321/svgpoly/pkg/svgdoc"
	"github.com/gucio321/svgpoly/pkg/tessellate"
	"github.com/gucio321/svgpoly/pkg/transform"
)

// Path is one loaded path element.
type Path struct {
	ID    string
	Style string
	// Transform is the matrix of the transform attribute (identity if absent or invalid).
	Transform geom.Matrix
	// Subpaths are the expanded commands of the d attribute.
	Subpaths []pathdata.Subpath
	// Polylines holds one tessellated polyline per subpath, already transformed.
	Polylines []geom.Polyline
}

// Option configures a Loader.
type Option func(*Loader)

// WithSamples sets the number of samples per bezier curve.
func WithSamples(n uint) Option {
	return func(l *Loader) {
		l.config.Samples = n
	}
}

// Loader loads path elements.
type Loader struct {
	config      tessellate.Config
	tessellator *tessellate.Tessellator
}

// NewLoader creates a new Loader.
func NewLoader(opts ...Option) *Loader {
	result := &Loader{
		config: tessellate.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(result)
	}

	result.tessellator = tessellate.New(result.config)

	return result
}

// Samples returns the number of samples per bezier curve the loader uses.
func (l *Loader) Samples() uint {
	return l.config.Samples
}

// LoadPath builds a Path from the attributes of one path element.
// Invalid transforms and unsupported commands are logged and ignored;
// a missing element, empty path data or a malformed command fail the whole path.
func (l *Loader) LoadPath(attrs []svgdoc.Attr) (*Path, error) {
	if attrs == nil {
		return nil, ErrNilElement
	}

	// 1.0: collect attributes
	result := &Path{
		Transform: geom.Identity(),
	}

	var d, transformAttr string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name) {
		case "id":
			result.ID = attr.Value
		case "style":
			result.Style = attr.Value
		case "transform":
			transformAttr = attr.Value
		case "d":
			d = attr.Value
		default:
			glg.Debugf("Ignoring attribute %s of path %q", attr.Name, result.ID)
		}
	}

	// 2.0: transform
	if transformAttr != "" {
		m, err := transform.Parse(transformAttr)
		if err != nil {
			glg.Warnf("Path %q: %v; using identity", result.ID, err)
		}

		result.Transform = m
	}

	// 3.0: commands
	subpaths, err := pathdata.ParseSubpaths(d)
	if err != nil {
		return nil, fmt.Errorf("cant parse path %q: %w", result.ID, err)
	}

	result.Subpaths = subpaths

	// 4.0: polylines
	if result.Polylines, err = l.tessellator.Path(subpaths, result.Transform); err != nil {
		return nil, fmt.Errorf("cant tessellate path %q: %w", result.ID, err)
	}

	return result, nil
}
