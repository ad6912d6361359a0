package svgdoc

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/rustyoz/svg"
)

var ErrNoRoot = errors.New("document has no root element")

// element adapts an etree element to Node.
type element struct {
	el *etree.Element
}

// FromElement wraps an etree element as a Node.
func FromElement(el *etree.Element) Node {
	return element{el}
}

func (e element) Name() string {
	return e.el.Tag
}

func (e element) Attrs() []Attr {
	result := make([]Attr, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		name := a.Key
		if a.Space != "" {
			name = a.Space + ":" + a.Key
		}

		result = append(result, Attr{Name: name, Value: a.Value})
	}

	return result
}

func (e element) Children() []Node {
	children := e.el.ChildElements()
	result := make([]Node, 0, len(children))

	for _, child := range children {
		result = append(result, element{child})
	}

	return result
}

// ReadBytes parses an XML document and returns its root element.
func ReadBytes(data []byte) (Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("cant read document: %w", err)
	}

	return root(doc)
}

// ReadFile parses the XML document at path and returns its root element.
func ReadFile(path string) (Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("cant read %s: %w", path, err)
	}

	return root(doc)
}

func root(doc *etree.Document) (Node, error) {
	r := doc.Root()
	if r == nil {
		return nil, ErrNoRoot
	}

	return FromElement(r), nil
}

// Header is the size information of an SVG document.
type Header struct {
	Title   string
	Width   string
	Height  string
	ViewBox string
}

// ReadHeader reads the title, size and view box of an SVG document.
func ReadHeader(data []byte) (*Header, error) {
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("cant parse svg: %w", err)
	}

	return &Header{
		Title:   doc.Title,
		Width:   doc.Width,
		Height:  doc.Height,
		ViewBox: doc.ViewBox,
	}, nil
}
