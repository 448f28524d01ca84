// internal/retailcrm/types.go
package retailcrm

import "encoding/json"

// NewCustomer is the customer object RetailCRM expects in the `customer`
// form field of the create call. Field names follow RetailCRM's
// camelCase convention.
type NewCustomer struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName,omitempty"`
	Email     string  `json:"email"`
	Phones    []Phone `json:"phones,omitempty"`
}

type Phone struct {
	Number string `json:"number"`
}

// CustomersQuery parameterizes the customer listing call. Filter keys are
// emitted as filter[<key>] query parameters.
type CustomersQuery struct {
	Limit   int
	Page    int
	Filters map[string]string
}

// CustomersResponse is RetailCRM's reply to GET /api/v5/customers. The
// customer array and pagination block are kept raw so the proxy passes
// them through untouched.
type CustomersResponse struct {
	Success    bool              `json:"success"`
	ErrorMsg   string            `json:"errorMsg"`
	Errors     json.RawMessage   `json:"errors"`
	Customers  []json.RawMessage `json:"customers"`
	Pagination json.RawMessage   `json:"pagination"`
}

// CreateResponse is RetailCRM's reply to POST /api/v5/customers/create.
type CreateResponse struct {
	Success  bool            `json:"success"`
	ErrorMsg string          `json:"errorMsg"`
	Errors   json.RawMessage `json:"errors"`
	ID       int             `json:"id"`
}
