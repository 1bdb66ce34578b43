package errors

import (
	"fmt"
)

// SchemaError represents a failure to load the serialization schema or to
// resolve a message type from it. Nothing is encoded or written once one of
// these is raised.
type SchemaError struct {
	Path        string // descriptor set location that was tried
	Message     string
	Remediation string // operator instructions for regenerating the descriptor set
	Err         error
}

// NewSchemaError creates a new schema error carrying the standard
// remediation instructions for the given descriptor set path.
func NewSchemaError(path, message string, err error) *SchemaError {
	return &SchemaError{
		Path:    path,
		Message: message,
		Remediation: fmt.Sprintf(
			"regenerate the descriptor set from the schema definition:\n  protoc --descriptor_set_out=%s --include_imports api/proto/user.proto",
			path,
		),
		Err: err,
	}
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (descriptor set %q): %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s (descriptor set %q)", e.Message, e.Path)
}

// Unwrap returns the wrapped error
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// InternalError represents an internal failure with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}
