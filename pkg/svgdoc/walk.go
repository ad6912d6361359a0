// Package svgdoc is the document side of svgpoly: it walks an SVG element tree
// and hands path element attributes to a loader.
package svgdoc

import "strings"

// Attr is one attribute of an element, in document order.
type Attr struct {
	Name, Value string
}

// Node is an element of a document tree.
type Node interface {
	// Name returns the element name, e.g. "path" or "g".
	Name() string
	// Attrs returns the attributes in document order.
	Attrs() []Attr
	// Children returns child elements in document order.
	Children() []Node
}

// Action tells Walk how to continue after visiting a node.
type Action int

const (
	// Continue descends into the children of the visited node.
	Continue Action = iota
	// SkipChildren does not descend into the visited node.
	SkipChildren
)

// VisitFunc is called for every node in document order.
type VisitFunc func(Node) Action

// Walk visits root and then, unless visit returns SkipChildren, all its descendants depth-first.
func Walk(root Node, visit VisitFunc) {
	if root == nil {
		return
	}

	if visit(root) == SkipChildren {
		return
	}

	for _, child := range root.Children() {
		Walk(child, visit)
	}
}

// Is reports whether n is an element called name (case-insensitive).
func Is(n Node, name string) bool {
	return strings.EqualFold(n.Name(), name)
}

// Element is an in-memory Node.
type Element struct {
	Tag        string
	Attributes []Attr
	Nodes      []Node
}

var _ Node = &Element{}

func (e *Element) Name() string     { return e.Tag }
func (e *Element) Attrs() []Attr    { return e.Attributes }
func (e *Element) Children() []Node { return e.Nodes }
