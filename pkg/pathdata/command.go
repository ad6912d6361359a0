// Package pathdata turns SVG path data (the "d" attribute) into typed commands:
// tokenizing, splitting into subpaths and expanding implicit repetitions.
package pathdata

import (
	"strconv"
	"strings"
)

// Command is a single path command with its numeric arguments.
type Command struct {
	Kind     Kind
	Relative bool
	Args     []float64
}

// IsMove reports whether c opens a subpath.
func (c Command) IsMove() bool {
	return c.Kind == KindMove
}

// String formats c back into path data syntax, e.g. "l 10,0".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(Letter(c.Kind, c.Relative))

	for i, arg := range c.Args {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(',')
		}

		sb.WriteString(strconv.FormatFloat(arg, 'g', -1, 64))
	}

	return sb.String()
}

// Subpath is a run of commands starting with a move.
type Subpath []Command
