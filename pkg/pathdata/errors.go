package pathdata

import (
	"errors"
	"fmt"
)

var (
	ErrNoCommands       = errors.New("path data has no commands")
	ErrMissingMove      = errors.New("path data does not start with a move command")
	ErrMalformedCommand = errors.New("malformed command")
)

// MalformedCommandError tells which command did not match its arity.
type MalformedCommandError struct {
	Command Command
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("%v: %s has %d arguments, want a nonzero multiple of %d",
		ErrMalformedCommand, e.Command.Kind, len(e.Command.Args), e.Command.Kind.Arity())
}

func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}
