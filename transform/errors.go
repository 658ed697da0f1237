package transform

import (
	"errors"
	"strconv"
)

var (
	// ErrDidNotConverge signals that rewriting did not reach a fixed point
	// within its pass limit.
	ErrDidNotConverge = errors.New("transform: did not converge")
)

// DidNotConvergeError is the error returned when ApplyUntilUnchanged runs out
// of passes. It matches ErrDidNotConverge with errors.Is.
type DidNotConvergeError struct {
	// Limit is the number of changing passes that were allowed.
	Limit int
}

func (err *DidNotConvergeError) Error() string {
	return ErrDidNotConverge.Error() + " within " + strconv.Itoa(err.Limit) + " passes"
}

func (err *DidNotConvergeError) Is(target error) bool {
	return target == ErrDidNotConverge
}
