package services

import "errors"

// Sentinel errors for lookups that miss
var (
	ErrMaterialNotFound = errors.New("Material not found")
	ErrSupplierNotFound = errors.New("Supplier not found")
)

// ValidationError reports a rejected write. The message names the
// offending field and is safe to return to the client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a message into a ValidationError
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
