// internal/domain/client/dto.go
package client

import "encoding/json"

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty"`
}

type ListClientsQuery struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	CreatedAt string `form:"created_at" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	Page      int    `form:"page,default=1" binding:"min=1"`
}

// ListClientsData carries RetailCRM's customer array and pagination
// block through unmodified.
type ListClientsData struct {
	Customers  []json.RawMessage `json:"customers"`
	Pagination json.RawMessage   `json:"pagination"`
}

type ListClientsMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type CreateClientData struct {
	CustomerID int    `json:"customer_id"`
	Message    string `json:"message"`
}

type CreateClientMeta struct {
	RetailCRMSuccess bool   `json:"retailcrm_success"`
	CustomerEmail    string `json:"customer_email"`
}
