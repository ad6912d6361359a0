package svgpoly

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/svgpoly/pkg/svgdoc"
)

// LoadDocument loads every path element under root in document order.
// Subtrees of defs elements are skipped.
// A path that fails to load does not stop the walk: the paths that loaded are
// returned together with all failures joined.
func (l *Loader) LoadDocument(root svgdoc.Node) ([]*Path, error) {
	var (
		result []*Path
		errs   []error
	)

	svgdoc.Walk(root, func(n svgdoc.Node) svgdoc.Action {
		switch {
		case svgdoc.Is(n, "defs"):
			glg.Debugf("Skipping %s", n.Name())
			return svgdoc.SkipChildren
		case svgdoc.Is(n, "path"):
			path, err := l.LoadPath(n.Attrs())
			if err != nil {
				glg.Warnf("Skipping path: %v", err)
				errs = append(errs, err)

				return svgdoc.Continue
			}

			result = append(result, path)
		}

		return svgdoc.Continue
	})

	glg.Debugf("Loaded %d paths (%d failed)", len(result), len(errs))

	return result, errors.Join(errs...)
}

// LoadBytes reads an SVG document and loads its paths.
func (l *Loader) LoadBytes(data []byte) ([]*Path, error) {
	root, err := svgdoc.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cant load document: %w", err)
	}

	return l.LoadDocument(root)
}
