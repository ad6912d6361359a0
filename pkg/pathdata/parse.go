package pathdata

import (
	"strings"

	"github.com/kpango/glg"
	"github.com/tdewolff/parse/v2/strconv"
)

// Parse tokenizes path data into a flat list of commands.
// Numbers following a command letter accumulate into that command
// until the next letter, so "l 1,2 3,4" is a single line command with 4 arguments
// (see Expand).
func Parse(d string) ([]Command, error) {
	var (
		result  []Command
		current *Command
	)

	for _, token := range strings.Fields(d) {
		// 1.0: a token starting with a command letter begins a new command
		if kind, relative, ok := lookupLetter(token[0]); ok {
			if current != nil {
				result = append(result, *current)
			}

			current = &Command{Kind: kind, Relative: relative}
			// numbers glued to the letter ("M10,20") still belong to it
			token = token[1:]
		}

		// 2.0: everything else is numbers
		numbers := parseNumbers(token)
		if len(numbers) == 0 {
			continue
		}

		if current == nil {
			glg.Warnf("Ignoring numbers %v found before the first command", numbers)
			continue
		}

		current.Args = append(current.Args, numbers...)
	}

	// 3.0: the last command
	if current != nil {
		result = append(result, *current)
	}

	if len(result) == 0 {
		return nil, ErrNoCommands
	}

	return result, nil
}

// parseNumbers reads every number of a comma separated token.
// A chunk may hold several numbers without separator ("10-5" or "1.5.5").
func parseNumbers(token string) []float64 {
	var result []float64

	for _, chunk := range strings.Split(token, ",") {
		b := []byte(chunk)
		for len(b) > 0 {
			f, n := strconv.ParseFloat(b)
			if n == 0 {
				glg.Warnf("Skipping unparsable number %q in path data", string(b))
				break
			}

			result = append(result, f)
			b = b[n:]
		}
	}

	return result
}
