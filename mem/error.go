package mem

import "github.com/pkg/errors"

var (
	// ErrUnknownRegister is returned when an address lookup is performed
	// on a register with no entry in the address table.
	ErrUnknownRegister = errors.New("unknown register")

	// ErrOutOfBounds is returned when an access falls outside the store.
	ErrOutOfBounds = errors.New("address out of bounds")

	// ErrUnimplemented is returned by heap operations. No allocation
	// policy exists yet.
	ErrUnimplemented = errors.New("operation not implemented")
)
