package parser

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("token index out of range")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// OutOfRangeError is returned when a token is requested from outside of the
// token sequence. It covers both running out of input and unbalanced
// delimiters.
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("token index %d; %d tokens available", e.Index, e.Count)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// UnexpectedTokenError is returned when the current token does not match the
// expected one. Pos is the index of the token, Line and Col its location in
// the source text.
type UnexpectedTokenError struct {
	Expected string
	Actual   string
	Pos      int

	Line int
	Col  int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("token %q expected, token %q encountered at position %d", e.Expected, e.Actual, e.Pos)
}

func (e *UnexpectedTokenError) Is(target error) bool {
	return target == ErrUnexpectedToken
}
