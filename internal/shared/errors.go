package shared

import (
	"errors"
	"fmt"
)

// Sentinel errors for the persistence layer.
var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrDanglingReference indicates a foreign-key violation.
	ErrDanglingReference = errors.New("dangling reference")
)

// Detail is the machine-readable message object carried by structured API
// errors, rendered verbatim inside the response envelope.
type Detail struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// APIError is an error that already knows the HTTP status and envelope
// message it should surface as. Message is either a plain string or a Detail.
type APIError struct {
	Status  int
	Message any
}

func (e *APIError) Error() string {
	if d, ok := e.Message.(Detail); ok {
		return fmt.Sprintf("%s: %s", d.Error, d.Description)
	}
	return fmt.Sprint(e.Message)
}

// NewAPIError builds an APIError with a plain string message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewAPIDetail builds an APIError carrying a Detail message object.
func NewAPIDetail(status int, code, description string) *APIError {
	return &APIError{Status: status, Message: Detail{Error: code, Description: description}}
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
