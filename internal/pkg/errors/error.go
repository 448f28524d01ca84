package xerrors

import "net/http"

// Error kinds exposed in the error envelope.
const (
	KindValidation = "validation_error"
	KindRetailCRM  = "retailcrm_error"
	KindInternal   = "internal_error"
)

// Error is the normalized form every failure is reduced to before it
// reaches the response envelope.
type Error struct {
	Kind    string
	Status  int
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a pre-flight validation failure (HTTP 422).
func Validation(message string, details map[string]interface{}) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Details: details,
	}
}

// RetailCRM builds an upstream failure carrying the status RetailCRM
// reported. Domain failures on a 2xx response fall back to 400.
func RetailCRM(message string, status int, details map[string]interface{}) *Error {
	if status < http.StatusBadRequest {
		status = http.StatusBadRequest
	}
	return &Error{
		Kind:    KindRetailCRM,
		Status:  status,
		Message: message,
		Details: details,
	}
}

// Internal builds an uncategorized failure. The original error is never
// surfaced to the caller.
func Internal(message string) *Error {
	return &Error{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}
