package errors

import "fmt"

// ErrorCode represents an engine error code.
type ErrorCode string

const (
	ErrParse          ErrorCode = "PARSE_ERROR"      // malformed import payload
	ErrValidation     ErrorCode = "VALIDATION_ERROR" // document not exportable / bad operation input
	ErrNotFound       ErrorCode = "NOT_FOUND"        // id or index not present
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"  // bad request parameters
	ErrInternal       ErrorCode = "INTERNAL"         // unexpected internal error
)

// EngineError represents a structured error with code and details.
type EngineError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewParse creates a parse error for malformed import payloads.
// The current document is left unchanged when this is returned.
func NewParse(format, msg string) *EngineError {
	return &EngineError{
		Code:    ErrParse,
		Message: fmt.Sprintf("cannot parse %s input: %s", format, msg),
		Details: map[string]any{"format": format},
	}
}

// NewValidation creates a validation error, e.g. export attempted while
// required info fields are absent.
func NewValidation(msg string, missing []string) *EngineError {
	e := &EngineError{
		Code:    ErrValidation,
		Message: msg,
	}
	if len(missing) > 0 {
		e.Details = map[string]any{"missing_fields": missing}
	}
	return e
}

// NewNotFound creates an error for an id or index that is not present in the
// document. Callers usually swallow this as a no-op: selection state can
// legitimately go stale after a structural edit.
func NewNotFound(identifier string) *EngineError {
	return &EngineError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("item not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *EngineError {
	return &EngineError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *EngineError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &EngineError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is an EngineError with the given code.
func Is(err error, code ErrorCode) bool {
	if eErr, ok := err.(*EngineError); ok {
		return eErr.Code == code
	}
	return false
}
