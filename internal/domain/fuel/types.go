package fuel

import "errors"

var ErrZeroEfficiency = errors.New("fuel efficiency must be greater than zero")
