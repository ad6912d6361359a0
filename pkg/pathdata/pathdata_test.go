package pathdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		d        string
		expected []Command
	}{
		{
			"square",
			"M 0,0 L 10,0 L 10,10 L 0,10 Z",
			[]Command{
				{Kind: KindMove, Args: []float64{0, 0}},
				{Kind: KindLine, Args: []float64{10, 0}},
				{Kind: KindLine, Args: []float64{10, 10}},
				{Kind: KindLine, Args: []float64{0, 10}},
				{Kind: KindClose},
			},
		},
		{
			"implicit repetition is accumulated",
			"m 1,2 l 3,4 5,6 7 8",
			[]Command{
				{Kind: KindMove, Relative: true, Args: []float64{1, 2}},
				{Kind: KindLine, Relative: true, Args: []float64{3, 4, 5, 6, 7, 8}},
			},
		},
		{
			"numbers glued to the letter",
			"M10,20 c1,2,3,4,5,6",
			[]Command{
				{Kind: KindMove, Args: []float64{10, 20}},
				{Kind: KindCubicCurve, Relative: true, Args: []float64{1, 2, 3, 4, 5, 6}},
			},
		},
		{
			"compact signs and decimals",
			"M 10-5 L .5.25 -1e2,+3",
			[]Command{
				{Kind: KindMove, Args: []float64{10, -5}},
				{Kind: KindLine, Args: []float64{0.5, 0.25, -100, 3}},
			},
		},
		{
			"arc and unsupported letters are tokenized",
			"M 0 0\tA 5 5 0 0 1 10 0\nh 3 V 4 z",
			[]Command{
				{Kind: KindMove, Args: []float64{0, 0}},
				{Kind: KindArc, Args: []float64{5, 5, 0, 0, 1, 10, 0}},
				{Kind: KindHorizontalLine, Relative: true, Args: []float64{3}},
				{Kind: KindVerticalLine, Args: []float64{4}},
				{Kind: KindClose, Relative: true},
			},
		},
		{
			"garbage tokens are skipped",
			"M 1 2 foo 3 4",
			[]Command{
				{Kind: KindMove, Args: []float64{1, 2, 3, 4}},
			},
		},
		{
			"numbers before the first command are dropped",
			"1 2 M 3 4",
			[]Command{
				{Kind: KindMove, Args: []float64{3, 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := Parse(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmds)
		})
	}
}

func TestParse_NoCommands(t *testing.T) {
	for _, d := range []string{"", "   ", "1 2 3"} {
		_, err := Parse(d)
		assert.ErrorIs(t, err, ErrNoCommands, "input %q", d)
	}
}

func TestSplit(t *testing.T) {
	cmds, err := Parse("M 0 0 L 1 1 z m 5 5 l 1 0 M 9 9")
	require.NoError(t, err)

	subpaths, err := Split(cmds)
	require.NoError(t, err)
	require.Len(t, subpaths, 3)

	assert.Len(t, subpaths[0], 3)
	assert.Len(t, subpaths[1], 2)
	assert.Len(t, subpaths[2], 1)

	for _, subpath := range subpaths {
		assert.True(t, subpath[0].IsMove())
	}
}

func TestSplit_Errors(t *testing.T) {
	_, err := Split(nil)
	assert.ErrorIs(t, err, ErrNoCommands)

	_, err = Split([]Command{{Kind: KindLine, Args: []float64{1, 1}}})
	assert.ErrorIs(t, err, ErrMissingMove)
}

func TestExpand(t *testing.T) {
	subpaths, err := ParseSubpaths("m 1,2 3,4 c 1,1 2,2 3,3 4,4 5,5 6,6 z")
	require.NoError(t, err)
	require.Len(t, subpaths, 1)

	assert.Equal(t, Subpath{
		{Kind: KindMove, Relative: true, Args: []float64{1, 2}},
		{Kind: KindMove, Relative: true, Args: []float64{3, 4}},
		{Kind: KindCubicCurve, Relative: true, Args: []float64{1, 1, 2, 2, 3, 3}},
		{Kind: KindCubicCurve, Relative: true, Args: []float64{4, 4, 5, 5, 6, 6}},
		{Kind: KindClose, Relative: true},
	}, subpaths[0])

	// every expanded command has exactly its arity
	for _, cmd := range subpaths[0] {
		assert.Len(t, cmd.Args, cmd.Kind.Arity())
	}
}

func TestExpand_DoesNotAliasInput(t *testing.T) {
	in := []Subpath{{{Kind: KindMove, Args: []float64{1, 2, 3, 4}}}}
	out, err := Expand(in)
	require.NoError(t, err)

	out[0][1].Args[0] = 100
	assert.Equal(t, []float64{1, 2, 3, 4}, in[0][0].Args)
}

func TestExpand_Malformed(t *testing.T) {
	tests := []struct {
		name string
		d    string
	}{
		{"line with odd count", "M 0 0 L 1 2 3"},
		{"move without arguments", "M L 1 2"},
		{"arc with six arguments", "M 0 0 A 1 1 0 0 1 5"},
		{"cubic with four arguments", "M 0 0 C 1 1 2 2"},
		{"close with arguments", "M 0 0 L 1 1 Z 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubpaths(tt.d)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCommand)

			var malformed *MalformedCommandError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, 2, KindMove.Arity())
	assert.Equal(t, 2, KindLine.Arity())
	assert.Equal(t, 6, KindCubicCurve.Arity())
	assert.Equal(t, 7, KindArc.Arity())
	assert.Equal(t, 0, KindClose.Arity())

	assert.Equal(t, "cubic", KindCubicCurve.String())
	assert.Equal(t, byte('A'), Letter(KindArc, false))
	assert.Equal(t, byte('z'), Letter(KindClose, true))
}

func TestCommand_String(t *testing.T) {
	cmd := Command{Kind: KindLine, Relative: true, Args: []float64{10, -0.5}}
	assert.Equal(t, "l 10,-0.5", cmd.String())
	assert.Equal(t, "Z", Command{Kind: KindClose}.String())
}
