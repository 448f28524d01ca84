// internal/retailcrm/errors.go
package retailcrm

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a 2xx response whose body is not valid JSON.
var ErrMalformedResponse = errors.New("retailcrm: malformed response body")

// APIError is the gateway's single failure type: a domain or transport
// failure reported by RetailCRM, carrying the upstream message, the HTTP
// status to forward and any structured error details.
type APIError struct {
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("retailcrm: %s (status %d)", e.Message, e.StatusCode)
}
