package beverage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument a constructor argument is invalid
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBeverageNil the beverage to wrap is nil
	ErrBeverageNil = fmt.Errorf("%w: beverage is nil", ErrInvalidArgument)
)
