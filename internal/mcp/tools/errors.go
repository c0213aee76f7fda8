package tools

import (
	"fmt"
	"strings"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeUnknownKind     = "UNKNOWN_KIND"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ErrInvalidInput returns an INVALID_INPUT error.
func ErrInvalidInput(msg string) error {
	return &CodedError{Code: ErrCodeInvalidInput, Message: msg}
}

// ErrNotFound returns a NOT_FOUND error for a resource kind and ID.
func ErrNotFound(what, id string) error {
	return &CodedError{Code: ErrCodeNotFound, Message: fmt.Sprintf("%s %q not found", what, id)}
}

// ErrUnknownKind returns an UNKNOWN_KIND error listing the known names.
func ErrUnknownKind(name string, known []string) error {
	return &CodedError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("unknown output kind %q (known: %s)", name, strings.Join(known, ", ")),
	}
}

// ErrMissingField wraps the default kind's hard failure for an absent
// required field. This stays a distinct code so callers can tell "the
// record does not match" apart from "the record is not even checkable".
func ErrMissingField(cause error) error {
	return &CodedError{Code: ErrCodeMissingField, Message: "result record is missing a required field", Cause: cause}
}

// ErrPayloadTooLarge returns a PAYLOAD_TOO_LARGE error.
func ErrPayloadTooLarge(size, max int) error {
	return &CodedError{
		Code:    ErrCodePayloadTooLarge,
		Message: fmt.Sprintf("payload is %d bytes, limit is %d", size, max),
	}
}
