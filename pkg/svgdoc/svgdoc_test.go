package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="100" height="50" viewBox="0 0 100 50">
  <title>sample</title>
  <defs>
    <path id="hidden" d="M 0,0 L 1,1"/>
  </defs>
  <g id="layer1" inkscape:label="Layer 1">
    <path id="first" style="fill:none" d="M 0,0 L 10,0"/>
    <g>
      <PATH id="second" d="M 5,5 L 6,6"/>
    </g>
  </g>
  <path id="third" transform="translate(1,1)" d="M 1,1 L 2,2"/>
</svg>`

func TestWalk(t *testing.T) {
	root, err := ReadBytes([]byte(document))
	require.NoError(t, err)

	var names []string
	Walk(root, func(n Node) Action {
		names = append(names, n.Name())
		if Is(n, "defs") {
			return SkipChildren
		}

		return Continue
	})

	assert.Equal(t, []string{"svg", "title", "defs", "g", "path", "g", "PATH", "path"}, names)
}

func TestWalk_Nil(t *testing.T) {
	Walk(nil, func(Node) Action {
		t.Fatal("visit called for a nil root")
		return Continue
	})
}

func TestAttrs(t *testing.T) {
	root, err := ReadBytes([]byte(document))
	require.NoError(t, err)

	var paths []Node
	Walk(root, func(n Node) Action {
		if Is(n, "path") {
			paths = append(paths, n)
		}

		return Continue
	})

	require.Len(t, paths, 4)
	assert.Equal(t, []Attr{
		{"id", "first"},
		{"style", "fill:none"},
		{"d", "M 0,0 L 10,0"},
	}, paths[1].Attrs())

	var group Node
	Walk(root, func(n Node) Action {
		if Is(n, "g") && group == nil {
			group = n
		}

		return Continue
	})

	require.NotNil(t, group)
	assert.Contains(t, group.Attrs(), Attr{"inkscape:label", "Layer 1"})
}

func TestElement(t *testing.T) {
	root := &Element{
		Tag: "svg",
		Nodes: []Node{
			&Element{Tag: "path", Attributes: []Attr{{"d", "M 0 0"}}},
			&Element{Tag: "defs", Nodes: []Node{&Element{Tag: "path"}}},
		},
	}

	count := 0
	Walk(root, func(n Node) Action {
		count++
		if Is(n, "defs") {
			return SkipChildren
		}

		return Continue
	})

	assert.Equal(t, 3, count)
}

func TestReadBytes_Errors(t *testing.T) {
	_, err := ReadBytes([]byte("<svg><path></svg>"))
	assert.Error(t, err)

	_, err = ReadBytes([]byte(""))
	assert.Error(t, err)
}

func TestReadHeader(t *testing.T) {
	header, err := ReadHeader([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">
  <path d="M 0,0 L 10,0"/>
</svg>`))
	require.NoError(t, err)

	assert.Equal(t, "100", header.Width)
	assert.Equal(t, "50", header.Height)
	assert.Equal(t, "0 0 100 50", header.ViewBox)
}
