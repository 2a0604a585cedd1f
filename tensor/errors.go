package tensor

import "github.com/pkg/errors"

// Error taxonomy for contract violations. All are returned synchronously
// at the violated precondition, before any output is allocated.
var (
	// ErrShapeMismatch reports axis counts or extents that are
	// incompatible with the requested operation.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOrderViolation reports a trace-out site list that is not
	// strictly ascending.
	ErrOrderViolation = errors.New("tensor: trace-out sites not strictly ascending")

	// ErrConfiguration reports structurally invalid parameters, such as
	// an empty summand list or a chain with fewer than two sites.
	ErrConfiguration = errors.New("tensor: invalid configuration")
)
