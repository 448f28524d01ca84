// internal/service/client/client_service.go
package client

import (
	"context"
	"encoding/json"

	"retailcrm-proxy/internal/domain/client"
	"retailcrm-proxy/internal/retailcrm"

	"go.uber.org/zap"
)

const createdMessage = "Клиент успешно создан"

type ClientService struct {
	crm    *retailcrm.Client
	logger *zap.Logger
}

func NewClientService(crm *retailcrm.Client, logger *zap.Logger) *ClientService {
	return &ClientService{
		crm:    crm,
		logger: logger,
	}
}

// ListClients fetches customers from RetailCRM with the query's filters
// applied and passes the customer array and pagination block through
// unmodified.
func (s *ClientService) ListClients(ctx context.Context, q *client.ListClientsQuery) (*client.ListClientsData, *client.ListClientsMeta, error) {
	result, err := s.crm.Customers(ctx, retailcrm.CustomersQuery{
		Limit:   q.Limit,
		Page:    q.Page,
		Filters: buildCustomerFilters(q),
	})
	if err != nil {
		s.logger.Error("failed to fetch customers", zap.Error(err))
		return nil, nil, err
	}

	customers := result.Customers
	if customers == nil {
		customers = []json.RawMessage{}
	}
	pagination := result.Pagination
	if pagination == nil {
		pagination = json.RawMessage("{}")
	}

	s.logger.Info("customers fetched",
		zap.Int("count", len(customers)),
		zap.Int("page", q.Page),
	)

	data := &client.ListClientsData{
		Customers:  customers,
		Pagination: pagination,
	}
	meta := &client.ListClientsMeta{
		Total: len(customers),
		Page:  q.Page,
		Limit: q.Limit,
	}
	return data, meta, nil
}

// CreateClient validates and normalizes the request, maps it to
// RetailCRM's customer shape and performs the create call.
func (s *ClientService) CreateClient(ctx context.Context, req *client.CreateClientRequest) (*client.CreateClientData, *client.CreateClientMeta, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	customer := retailcrm.NewCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Phone != "" {
		customer.Phones = []retailcrm.Phone{{Number: req.Phone}}
	}

	result, err := s.crm.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("failed to create customer", zap.Error(err))
		return nil, nil, err
	}

	s.logger.Info("customer created",
		zap.Int("customer_id", result.ID),
		zap.String("email", req.Email),
	)

	data := &client.CreateClientData{
		CustomerID: result.ID,
		Message:    createdMessage,
	}
	meta := &client.CreateClientMeta{
		RetailCRMSuccess: true,
		CustomerEmail:    req.Email,
	}
	return data, meta, nil
}

// buildCustomerFilters maps the local query onto RetailCRM filter keys.
// A created_at date expands into an inclusive single-day range.
func buildCustomerFilters(q *client.ListClientsQuery) map[string]string {
	filters := map[string]string{}

	if q.Name != "" {
		filters["name"] = q.Name
	}
	if q.Email != "" {
		filters["email"] = q.Email
	}
	if q.CreatedAt != "" {
		filters["dateFrom"] = q.CreatedAt
		filters["dateTo"] = q.CreatedAt
	}

	return filters
}
