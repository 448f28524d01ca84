// internal/handlers/client/client_handler.go
package client

import (
	"errors"
	"net/http"

	"retailcrm-proxy/internal/domain/client"
	xerrors "retailcrm-proxy/internal/pkg/errors"
	"retailcrm-proxy/internal/pkg/response"
	"retailcrm-proxy/internal/retailcrm"
	service "retailcrm-proxy/internal/service/client"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	requiredFieldsMessage = "Email и имя являются обязательными полями"
	invalidQueryMessage   = "Неверные параметры запроса"
	internalListMessage   = "Внутренняя ошибка сервера"
	internalCreateMessage = "Внутренняя ошибка при создании клиента"
	formatErrorMessage    = "Ошибка форматирования данных"
	createErrorPrefix     = "Ошибка при создании клиента: "
)

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// ListClients returns customers from RetailCRM with optional name, email
// and registration-date filters.
func (h *ClientHandler) ListClients(c *gin.Context) {
	var q client.ListClientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, xerrors.Validation(invalidQueryMessage, bindingDetails(err)))
		return
	}

	data, meta, err := h.clientService.ListClients(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, normalizeListError(err))
		return
	}

	response.Success(c, http.StatusOK, data, meta)
}

// CreateClient creates a customer in RetailCRM.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req client.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, xerrors.Validation(requiredFieldsMessage, bindingDetails(err)))
		return
	}

	data, meta, err := h.clientService.CreateClient(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, normalizeCreateError(err))
		return
	}

	response.Success(c, http.StatusCreated, data, meta)
}

// normalizeListError maps a listing failure onto the error envelope.
func normalizeListError(err error) *xerrors.Error {
	var apiErr *retailcrm.APIError
	if errors.As(err, &apiErr) {
		return xerrors.RetailCRM(apiErr.Message, apiErr.StatusCode, apiErr.Details)
	}
	return xerrors.Internal(internalListMessage)
}

// normalizeCreateError maps a creation failure onto the error envelope.
// Local validation short-circuits as 422, RetailCRM failures keep the
// upstream status, everything else collapses to a generic 500.
func normalizeCreateError(err error) *xerrors.Error {
	switch {
	case errors.Is(err, client.ErrEmptyFirstName), errors.Is(err, client.ErrInvalidPhone):
		return xerrors.Validation(err.Error(), nil)
	case errors.Is(err, retailcrm.ErrMalformedResponse):
		return xerrors.Internal(formatErrorMessage)
	}

	var apiErr *retailcrm.APIError
	if errors.As(err, &apiErr) {
		return xerrors.RetailCRM(createErrorPrefix+apiErr.Message, apiErr.StatusCode, apiErr.Details)
	}
	return xerrors.Internal(internalCreateMessage)
}

// bindingDetails unpacks validator field errors into the details block.
func bindingDetails(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return map[string]interface{}{"fields": fields}
}
