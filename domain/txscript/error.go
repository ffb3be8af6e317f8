package txscript

import "github.com/pkg/errors"

var (
	// ErrInvalidHashLength is returned when a script template is built from a
	// hash that is not 20 bytes long.
	ErrInvalidHashLength = errors.New("hash must be 20 bytes")

	// ErrNonStandardScript is returned when an address is requested for a
	// script that matches none of the known templates.
	ErrNonStandardScript = errors.New("non-standard script")
)
