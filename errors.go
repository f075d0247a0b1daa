package gridastar

import "github.com/cockroachdb/errors"

// Precondition errors. NotFound and Cancelled are search outcomes, not errors.
var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrInvalidEndpoints = errors.New("invalid search endpoints")
)
