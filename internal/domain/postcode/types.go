package postcode

import "errors"

var ErrInvalidPostcode = errors.New("invalid UK postcode format")
