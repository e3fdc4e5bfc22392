// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifacts

import (
	"errors"
	"fmt"
)

// FormatError reports a definitions stream that does not conform to the
// artifact-definition grammar: malformed YAML, a definition without a
// name, a duplicate name, or an unknown field.
type FormatError struct {
	// Err is the underlying decode or validation failure.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid artifact definition: %v", e.Err)
}

// Unwrap returns the underlying failure.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is a FormatError. Callers use it to
// separate grammar violations from ordinary I/O errors.
func IsFormatError(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}
