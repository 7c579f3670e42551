package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a category of domain failure. Codes are stable API: the
// transport layer maps them to HTTP statuses and clients key off them.
type Code string

const (
	// Validation failures on caller input.
	CodeInvalidBloodType Code = "invalid_blood_type"
	CodeInvalidSite      Code = "invalid_site"
	CodeInvalidUrgency   Code = "invalid_urgency"
	CodeMissingField     Code = "missing_field"
	CodeBadRequest       Code = "bad_request"

	// Match outcomes: the request was well formed but no donor could serve it.
	CodeNoCompatibleDonors Code = "no_compatible_donors"
	CodeNoEligibleDonors   Code = "no_eligible_donors"

	// Queue state.
	CodeQueueEmpty Code = "queue_empty"

	CodeInternal Code = "internal"
)

// Error is the domain error type carried across service boundaries.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a domain code while preserving the cause chain.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf extracts the domain code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a domain code to the HTTP status the transport layer
// should respond with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidBloodType, CodeInvalidSite, CodeInvalidUrgency, CodeMissingField, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNoCompatibleDonors, CodeNoEligibleDonors, CodeQueueEmpty:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
