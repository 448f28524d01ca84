package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"retailcrm-proxy/internal/domain/client"
	"retailcrm-proxy/internal/retailcrm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, upstream http.HandlerFunc) *ClientService {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	return NewClientService(retailcrm.NewClient(srv.URL, "test-key"), zap.NewNop())
}

func TestBuildCustomerFilters(t *testing.T) {
	tests := []struct {
		name  string
		query client.ListClientsQuery
		want  map[string]string
	}{
		{
			name:  "no filters",
			query: client.ListClientsQuery{Limit: 20, Page: 1},
			want:  map[string]string{},
		},
		{
			name:  "name and email",
			query: client.ListClientsQuery{Name: "Егор", Email: "egor@example.com"},
			want:  map[string]string{"name": "Егор", "email": "egor@example.com"},
		},
		{
			name:  "created_at expands to an inclusive single-day range",
			query: client.ListClientsQuery{CreatedAt: "2025-12-15"},
			want:  map[string]string{"dateFrom": "2025-12-15", "dateTo": "2025-12-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCustomerFilters(&tt.query))
		})
	}
}

func TestClientService_ListClients(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"customers": [{"id": 1}, {"id": 2}],
			"pagination": {"limit": 20, "totalCount": 2, "currentPage": 1, "totalPageCount": 1}
		}`))
	})

	data, meta, err := svc.ListClients(context.Background(), &client.ListClientsQuery{Limit: 20, Page: 1})
	require.NoError(t, err)

	assert.Len(t, data.Customers, 2)
	assert.JSONEq(t, `{"limit": 20, "totalCount": 2, "currentPage": 1, "totalPageCount": 1}`, string(data.Pagination))
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)
}

func TestClientService_ListClients_EmptyUpstreamBlocks(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	data, meta, err := svc.ListClients(context.Background(), &client.ListClientsQuery{Limit: 20, Page: 1})
	require.NoError(t, err)

	assert.NotNil(t, data.Customers)
	assert.Empty(t, data.Customers)
	assert.JSONEq(t, `{}`, string(data.Pagination))
	assert.Equal(t, 0, meta.Total)
}

func TestClientService_CreateClient(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "id": 12345}`))
	})

	data, meta, err := svc.CreateClient(context.Background(), &client.CreateClientRequest{
		FirstName: "Егор",
		Email:     "egor@example.com",
		Phone:     "+375 33 321-86-78",
	})
	require.NoError(t, err)

	assert.Equal(t, 12345, data.CustomerID)
	assert.Equal(t, "Клиент успешно создан", data.Message)
	assert.True(t, meta.RetailCRMSuccess)
	assert.Equal(t, "egor@example.com", meta.CustomerEmail)
}

func TestClientService_CreateClient_ValidationShortCircuits(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, _, err := svc.CreateClient(context.Background(), &client.CreateClientRequest{
		FirstName: "   ",
		Email:     "egor@example.com",
	})

	assert.ErrorIs(t, err, client.ErrEmptyFirstName)
	assert.False(t, called, "no outbound call may be made on validation failure")
}
