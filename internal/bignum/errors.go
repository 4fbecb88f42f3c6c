package bignum

import "github.com/juju/errors"

// ErrMalformedDecimal is returned when FromDecimalString is given a string
// that isn't a valid optionally-signed run of decimal digits.
var ErrMalformedDecimal = errors.New("bignum: malformed decimal string")
