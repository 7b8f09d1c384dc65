package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/customer-api/internal/api/metrics"
	"github.com/contactdesk/customer-api/internal/core/domain"
	"github.com/contactdesk/customer-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer records. Every route it
// serves sits behind the Auth middleware.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /customers.
//
// @Summary      Create a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	callerID, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err = h.service.Create(c.Request().Context(), callerID, ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "customer created"})
}

// List handles GET /customers.
//
// @Summary      List the caller's customer records
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   customerResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	callerID, err := ctxCaller(c)
	if err != nil {
		return err
	}

	customers, err := h.service.List(c.Request().Context(), callerID)
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("list", "ok").Inc()

	resp := make([]customerResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, toCustomerResponse(cust))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /customers/:id.
//
// @Summary      Update a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Customer id"
// @Param        body  body      customerRequest  true  "Replacement field values"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	callerID, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Update(c.Request().Context(), callerID, c.Param("id"), ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "customer updated"})
}

// Delete handles DELETE /customers/:id.
//
// @Summary      Delete a customer record
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	callerID, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), callerID, c.Param("id")); err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "customer deleted"})
}

func toCustomerResponse(cust *domain.Customer) customerResponse {
	return customerResponse{
		ID:        cust.ID,
		Name:      cust.Name,
		Email:     cust.Email,
		Phone:     cust.Phone,
		Company:   cust.Company,
		OwnerID:   cust.OwnerID,
		CreatedAt: cust.CreatedAt,
		UpdatedAt: cust.UpdatedAt,
	}
}
