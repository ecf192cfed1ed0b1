package tape

import "errors"

// ErrOutputDimNotPositive is returned by WithMultiOutput when k is not
// a positive integer.
var ErrOutputDimNotPositive = errors.New("tape: multi-output dimension must be positive")
