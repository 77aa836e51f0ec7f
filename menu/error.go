package menu

import "errors"

var (
	// ErrUnknownBeverage no base beverage has the name
	ErrUnknownBeverage = errors.New("unknown beverage")

	// ErrUnknownCondiment no condiment has the name
	ErrUnknownCondiment = errors.New("unknown condiment")
)
