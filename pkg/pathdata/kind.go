package pathdata

//go:generate stringer -type=Kind -linecomment

// Kind is a path command kind. Absolute/relative is carried separately by Command.Relative.
type Kind int

const (
	// Move - start a new subpath at (x, y)
	KindMove Kind = iota // move
	// Line - straight line to (x, y)
	KindLine // line
	// CubicCurve - cubic bezier with two control points and an end point
	KindCubicCurve // cubic
	// Arc - elliptical arc (rx ry x-axis-rotation large-arc sweep x y)
	KindArc // arc
	// Close - close the subpath back to its first point
	KindClose // close
	// HorizontalLine - recognized by the parser but not tessellated
	KindHorizontalLine // horizontal
	// VerticalLine - recognized by the parser but not tessellated
	KindVerticalLine // vertical
)

// arities is the fixed number of arguments per command.
var arities = map[Kind]int{
	KindMove:           2,
	KindLine:           2,
	KindCubicCurve:     6,
	KindArc:            7,
	KindClose:          0,
	KindHorizontalLine: 1,
	KindVerticalLine:   1,
}

// Arity returns the fixed number of numeric arguments of one k command.
func (k Kind) Arity() int {
	return arities[k]
}

// letters maps lowercase command letters to kinds.
var letters = map[byte]Kind{
	'm': KindMove,
	'l': KindLine,
	'c': KindCubicCurve,
	'a': KindArc,
	'z': KindClose,
	'h': KindHorizontalLine,
	'v': KindVerticalLine,
}

// lookupLetter converts a command letter. Lowercase means relative.
func lookupLetter(letter byte) (kind Kind, relative, ok bool) {
	lower := letter
	if letter >= 'A' && letter <= 'Z' {
		lower = letter + ('a' - 'A')
	}

	kind, ok = letters[lower]

	return kind, lower == letter, ok
}

// Letter returns the SVG letter of k, lowercase when relative.
func Letter(k Kind, relative bool) byte {
	for l, kind := range letters {
		if kind != k {
			continue
		}

		if relative {
			return l
		}

		return l - ('a' - 'A')
	}

	return '?'
}
