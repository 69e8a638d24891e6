package trie

import "fmt"

type UserError interface {
	UserCause() string
}

type InvalidAlphabetError struct {
	Input string
	Char  string
	Pos   int
}

func (i *InvalidAlphabetError) UserCause() string {
	return fmt.Sprintf("%q has %q at position %d, only A-Z allowed", i.Input, i.Char, i.Pos)
}

func (i *InvalidAlphabetError) Error() string {
	return "invalidAlphabetError"
}

type EmptyInputError struct {
	Kind string
}

func (e *EmptyInputError) UserCause() string {
	return fmt.Sprintf("empty %s", e.Kind)
}

func (e *EmptyInputError) Error() string {
	return "emptyInputError"
}
