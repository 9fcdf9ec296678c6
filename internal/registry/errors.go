package registry

import (
	"errors"
	"fmt"
)

// Validation error codes. The UI uses these to show a targeted hint
// next to the offending form field.
const (
	CodeInvalidFormat = "invalid_format"
	CodeDuplicateName = "duplicate_name"
	CodeInvalidValue  = "invalid_value"
	CodeInvalidNumber = "invalid_number"
	CodeInvalidJSON   = "invalid_json"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidArray  = "invalid_array"
	CodeInvalidLength = "invalid_length"
)

// ValidationError reports input that fails a declared constraint. It is
// always returned before any state mutation.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// NotFoundError reports an operation referencing an id absent from the
// collection.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
