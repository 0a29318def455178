// internal/handlers/customer/customer_handler.go
package customer

import (
	"errors"
	"fmt"
	"net/http"

	"custman-service/internal/domain/customer"
	xerrors "custman-service/internal/pkg/errors"
	"custman-service/internal/pkg/response"
	service "custman-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers returns all active customers, most recently updated first.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// CreateCustomer creates a new customer and points at it via Location.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("malformed request: %v", err))
		return
	}

	result, err := h.customerService.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/customer/%s", result.ID))
	c.JSON(http.StatusCreated, result)
}

// GetCustomer retrieves a customer by id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	result, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomerByEmail retrieves a customer by email address. ?email_address=x
func (h *CustomerHandler) GetCustomerByEmail(c *gin.Context) {
	email, err := customer.NewEmailAddress(c.Query("email_address"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.customerService.GetCustomerByEmail(c.Request.Context(), email)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateCustomer replaces all mutable fields of a customer.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("malformed request: %v", err))
		return
	}

	result, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteCustomer soft deletes a customer. Both outcomes have empty bodies.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	deleted, err := h.customerService.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		response.Internal(c)
		return
	}

	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// customerID parses the :id path parameter, responding 400 on garbage input.
func (h *CustomerHandler) customerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid customer id %q", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

// mapError is the single place domain failures become status codes.
func (h *CustomerHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, xerrors.ErrDuplicateEmail):
		// Deliberately vague: never reveals which record holds the email.
		response.Conflict(c, xerrors.ErrDuplicateEmail.Error())
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, xerrors.ErrNotFound.Error())
	default:
		response.Internal(c)
	}
}
