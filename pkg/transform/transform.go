// Package transform parses the SVG transform attribute into a geom.Matrix.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gucio321/svgpoly/pkg/geom"
)

var (
	ErrEmpty     = errors.New("empty transform")
	ErrUnknown   = errors.New("unknown transform")
	ErrMalformed = errors.New("malformed transform")
)

// Parse parses a transform attribute value such as
// "matrix(0,0.55,-0.55,0,194.5,-149.5)" or "translate(10 0) scale(2)".
// Forms in a list are composed left to right.
//
// The returned matrix is always usable: on error it is the identity.
func Parse(s string) (geom.Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return geom.Identity(), ErrEmpty
	}

	result := geom.Identity()

	for s != "" {
		// 1.0: split "name(args)" from the rest
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return geom.Identity(), fmt.Errorf("%w: %q", ErrUnknown, s)
		}

		name := strings.TrimSpace(s[:open])
		rest := s[open+1:]
		closing := strings.IndexByte(rest, ')')
		if closing < 0 {
			// tolerate a missing closing paren on the last form
			closing = len(rest)
		}

		body := rest[:closing]
		s = strings.TrimLeft(rest[min(closing+1, len(rest)):], " \t\r\n,")

		// 2.0: numbers
		numbers, err := parseNumbers(body)
		if err != nil {
			return geom.Identity(), fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
		}

		// 3.0: matrix
		m, err := build(name, numbers)
		if err != nil {
			return geom.Identity(), err
		}

		result = result.Mul(m)
	}

	return result, nil
}

func build(name string, n []float64) (geom.Matrix, error) {
	switch name {
	case "matrix":
		if len(n) != 6 {
			return badCount(name, len(n), "6")
		}

		return geom.Affine(n[0], n[1], n[2], n[3], n[4], n[5]), nil
	case "skewX":
		if len(n) != 1 {
			return badCount(name, len(n), "1")
		}

		return geom.SkewX(geom.DegToRad(n[0])), nil
	case "skewY":
		if len(n) != 1 {
			return badCount(name, len(n), "1")
		}

		return geom.SkewY(geom.DegToRad(n[0])), nil
	case "scale":
		// if y is not provided, it is equal to x
		switch len(n) {
		case 1:
			return geom.Scale(n[0], n[0]), nil
		case 2:
			return geom.Scale(n[0], n[1]), nil
		}

		return badCount(name, len(n), "1 or 2")
	case "translate":
		// if y is not provided, it is zero
		switch len(n) {
		case 1:
			return geom.Translate(n[0], 0), nil
		case 2:
			return geom.Translate(n[0], n[1]), nil
		}

		return badCount(name, len(n), "1 or 2")
	case "rotate":
		switch len(n) {
		case 1:
			return geom.Rotate(geom.DegToRad(n[0])), nil
		case 3:
			return geom.RotateAbout(geom.DegToRad(n[0]), geom.Pt(n[1], n[2])), nil
		}

		return badCount(name, len(n), "1 or 3")
	}

	return geom.Identity(), fmt.Errorf("%w: %q", ErrUnknown, name)
}

func badCount(name string, got int, want string) (geom.Matrix, error) {
	return geom.Identity(), fmt.Errorf("%w: %s takes %s parameters, got %d", ErrMalformed, name, want, got)
}

func parseNumbers(body string) ([]float64, error) {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	result := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, n := strconv.ParseFloat([]byte(field))
		if n != len(field) {
			return nil, fmt.Errorf("invalid number %q", field)
		}

		result = append(result, f)
	}

	return result, nil
}
