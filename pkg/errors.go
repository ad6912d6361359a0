package svgpoly

import "errors"

var ErrNilElement = errors.New("path element has no attributes")
