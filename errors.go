package gnfa

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState A state is not (or no longer) a member of the automaton.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidConstruction The automaton or a conversion request is malformed.
	ErrInvalidConstruction = errors.New("invalid construction")

	ErrDuplicateState = fmt.Errorf("%w: duplicate state", ErrInvalidConstruction)
)
