package redberry

import (
	"errors"
	"strconv"
)

var (
	// ErrMalformedExpression matches every MalformedExpressionError.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrUnbalancedBrackets matches every BracketError.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)

// MalformedExpressionError is an error indicating a fragment of the input
// that no recognizer accepts. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the fragment.
	Col int
	// Text is the offending fragment.
	Text string
}

func (err *MalformedExpressionError) Error() string {
	if err.Text == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "missing operand")
	}
	return errpos(err.Col, "malformed expression "+strconv.Quote(err.Text))
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// Is reports whether target is ErrMalformedExpression.
func (err *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// BracketError is an error indicating an unmatched bracket in the input.
// Exactly one of Left and Right is set. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if it has no match.
	Left string
	// Right is the closing bracket, if it has no match.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// Is reports whether target is ErrUnbalancedBrackets.
func (err *BracketError) Is(target error) bool {
	return target == ErrUnbalancedBrackets
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the fragment that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
)
