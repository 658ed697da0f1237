package indices

import "errors"

var (
	// ErrIncompatibleGenerators signals a merge between generators that do
	// not descend from the same construction.
	ErrIncompatibleGenerators = errors.New("indices: incompatible generators")
)
