package pathdata

// Expand replaces repeated commands ("l 1,2 3,4") with one command per
// arity-sized group of arguments ("l 1,2" "l 3,4").
// A command whose argument count is not a nonzero multiple of its arity
// (or a close with arguments) is a *MalformedCommandError.
func Expand(subpaths []Subpath) ([]Subpath, error) {
	result := make([]Subpath, 0, len(subpaths))

	for _, compressed := range subpaths {
		subpath := make(Subpath, 0, len(compressed))

		for _, cmd := range compressed {
			expanded, err := expandCommand(cmd)
			if err != nil {
				return nil, err
			}

			subpath = append(subpath, expanded...)
		}

		result = append(result, subpath)
	}

	return result, nil
}

func expandCommand(cmd Command) ([]Command, error) {
	arity := cmd.Kind.Arity()
	count := len(cmd.Args)

	if arity == 0 {
		if count != 0 {
			return nil, &MalformedCommandError{Command: cmd}
		}

		return []Command{cmd}, nil
	}

	if count == 0 || count%arity != 0 {
		return nil, &MalformedCommandError{Command: cmd}
	}

	result := make([]Command, 0, count/arity)
	for n := 0; n < count; n += arity {
		args := make([]float64, arity)
		copy(args, cmd.Args[n:n+arity])
		result = append(result, Command{
			Kind:     cmd.Kind,
			Relative: cmd.Relative,
			Args:     args,
		})
	}

	return result, nil
}

// ParseSubpaths runs Parse, Split and Expand.
func ParseSubpaths(d string) ([]Subpath, error) {
	commands, err := Parse(d)
	if err != nil {
		return nil, err
	}

	subpaths, err := Split(commands)
	if err != nil {
		return nil, err
	}

	return Expand(subpaths)
}
