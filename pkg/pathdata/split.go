package pathdata

// Split partitions commands into subpaths. Every move command opens a new subpath.
// The first command has to be a move.
func Split(commands []Command) ([]Subpath, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}

	if !commands[0].IsMove() {
		return nil, ErrMissingMove
	}

	var result []Subpath

	for _, cmd := range commands {
		if cmd.IsMove() {
			result = append(result, Subpath{})
		}

		last := len(result) - 1
		result[last] = append(result[last], cmd)
	}

	return result, nil
}
