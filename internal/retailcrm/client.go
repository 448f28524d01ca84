// internal/retailcrm/client.go
package retailcrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	createCustomerPath = "/api/v5/customers/create"
	listCustomersPath  = "/api/v5/customers"

	apiKeyHeader   = "X-API-KEY"
	requestTimeout = 30 * time.Second

	timeoutMessage    = "Таймаут соединения с RetailCRM"
	createErrFallback = "Неизвестная ошибка создания"
	listErrFallback   = "Неизвестная ошибка получения"
)

// Client issues calls against the RetailCRM v5 API. One outbound call
// per operation, no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a RetailCRM API client for the given base URL and
// static API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateCustomer creates a customer in RetailCRM. The customer object is
// serialized as JSON into a single form-encoded `customer` field.
func (c *Client) CreateCustomer(ctx context.Context, customer NewCustomer) (*CreateResponse, error) {
	payload, err := json.Marshal(customer)
	if err != nil {
		return nil, fmt.Errorf("retailcrm: failed to encode customer: %w", err)
	}

	form := url.Values{}
	form.Set("customer", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createCustomerPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("retailcrm: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(apiKeyHeader, c.apiKey)

	respBody, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result CreateResponse
	parseErr := json.Unmarshal(respBody, &result)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &APIError{
			Message:    messageOr(result.ErrorMsg, createErrFallback),
			StatusCode: status,
			Details:    errorDetails(result.Errors),
		}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, parseErr)
	}
	if !result.Success {
		return nil, &APIError{
			Message:    messageOr(result.ErrorMsg, createErrFallback),
			StatusCode: http.StatusBadRequest,
			Details:    errorDetails(result.Errors),
		}
	}

	return &result, nil
}

// Customers lists customers matching the query filters.
func (c *Client) Customers(ctx context.Context, q CustomersQuery) (*CustomersResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("page", strconv.Itoa(q.Page))
	for key, value := range q.Filters {
		params.Set("filter["+key+"]", value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listCustomersPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("retailcrm: failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	respBody, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result CustomersResponse
	parseErr := json.Unmarshal(respBody, &result)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &APIError{
			Message:    messageOr(result.ErrorMsg, listErrFallback),
			StatusCode: status,
		}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("retailcrm: failed to decode response: %w", parseErr)
	}
	if !result.Success {
		return nil, &APIError{
			Message:    messageOr(result.ErrorMsg, listErrFallback),
			StatusCode: http.StatusBadRequest,
		}
	}

	return &result, nil
}

// do executes the request and reads the body. Timeouts surface as a 504
// APIError and are not retried.
func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, 0, &APIError{Message: timeoutMessage, StatusCode: http.StatusGatewayTimeout}
		}
		return nil, 0, fmt.Errorf("retailcrm: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, 0, &APIError{Message: timeoutMessage, StatusCode: http.StatusGatewayTimeout}
		}
		return nil, 0, fmt.Errorf("retailcrm: failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func errorDetails(errs json.RawMessage) map[string]interface{} {
	if errs == nil {
		errs = json.RawMessage("[]")
	}
	return map[string]interface{}{"errors": errs}
}
