package travel

import "errors"

var (
	ErrNegativeBaseRate   = errors.New("base rate cannot be negative")
	ErrNegativeTravelTime = errors.New("travel time cannot be negative")
)
