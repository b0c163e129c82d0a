package errs

import "errors"

// Error categories shared by every layer. Domain errors are marked with one of
// these so handlers can branch on the category without knowing the package.
var (
	// Malformed or inverted interval, missing required field, unknown enum value
	ErrValidation = errors.New("validation error")

	// Referenced car, client or reservation is absent from the snapshot
	ErrNotFound = errors.New("not found")

	// Overlapping booking; also a normal negative availability result
	ErrConflict = errors.New("conflict")
)

// Session lacks the role an operation requires
var ErrForbidden = errors.New("forbidden")
