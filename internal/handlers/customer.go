package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/internal/service"
)

const customerNotFoundMsg = "Customer not found"

type newCustomer struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Address string `json:"address" validate:"required,max=255"`
	Home    string `json:"home" validate:"required,max=100"`
	Road    string `json:"road" validate:"required,max=100"`
	Block   string `json:"block" validate:"required,max=100"`
	Town    string `json:"town" validate:"required,max=100"`
}

type updateCustomer struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,min=1,max=32"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
	Home    *string `json:"home" validate:"omitempty,min=1,max=100"`
	Road    *string `json:"road" validate:"omitempty,min=1,max=100"`
	Block   *string `json:"block" validate:"omitempty,min=1,max=100"`
	Town    *string `json:"town" validate:"omitempty,min=1,max=100"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers ordered by creation time
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {array}  model.Customer
// @Failure     401    {object} errorResponse
// @Failure     500    {object} errorResponse
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return internalError("Failed to fetch customers", err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer, id and timestamps are assigned by server
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newCustomer body	 newCustomer true "Data for new customer"
// @Success     201    		{object} model.Customer
// @Failure     400    		{object} validationErrorResponse
// @Failure     401    		{object} errorResponse
// @Failure     500    		{object} errorResponse
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := bind(c, &nc); err != nil {
		return err
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), &model.NewCustomer{
		Name:    nc.Name,
		Phone:   nc.Phone,
		Address: nc.Address,
		Home:    nc.Home,
		Road:    nc.Road,
		Block:   nc.Block,
		Town:    nc.Town,
	})
	if err != nil {
		return internalError("Failed to create customer", err)
	}

	logrus.WithField("id", customer.ID).Info("customer created")
	return c.JSON(http.StatusCreated, customer)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {object} model.Customer
// @Failure     401    {object} errorResponse
// @Failure     404    {object} errorResponse
// @Failure     500    {object} errorResponse
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if !isCustomerID(id) {
		return customerNotFound()
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return internalError("Failed to fetch customer", err)
	}

	if customer == nil {
		return customerNotFound()
	}
	return c.JSON(http.StatusOK, customer)
}

// Update updates customer partially
// @Summary     Update customer
// @Description Applies provided fields to existing customer
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		   path 	string 		   true "Customer guid" Format(uuid)
// @Param 		updateCustomer body	    updateCustomer true "Customer fields to update"
// @Success     200    		   {object} model.Customer
// @Failure     400    		   {object} validationErrorResponse
// @Failure     401    		   {object} errorResponse
// @Failure     404    		   {object} errorResponse
// @Failure     500    		   {object} errorResponse
// @Router      /api/customers/{id} [put]
// @Router      /api/customers/{id} [patch]
func (h *CustomerHTTPHandler) Update(c echo.Context) error {
	var uc updateCustomer
	if err := bind(c, &uc); err != nil {
		return err
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	id := c.Param("id")
	if !isCustomerID(id) {
		return customerNotFound()
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), id, &model.PatchCustomer{
		Name:    uc.Name,
		Phone:   uc.Phone,
		Address: uc.Address,
		Home:    uc.Home,
		Road:    uc.Road,
		Block:   uc.Block,
		Town:    uc.Town,
	})
	if err != nil {
		if apperrors.IsEntryNotFound(err) {
			return customerNotFound()
		}
		return internalError("Failed to update customer", err)
	}

	logrus.WithField("id", customer.ID).Info("customer updated")
	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     401    {object} errorResponse
// @Failure     404    {object} errorResponse
// @Failure     500    {object} errorResponse
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if !isCustomerID(id) {
		return customerNotFound()
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		if apperrors.IsEntryNotFound(err) {
			return customerNotFound()
		}
		return internalError("Failed to delete customer", err)
	}

	logrus.WithField("id", id).Info("customer deleted")
	return c.NoContent(http.StatusNoContent)
}

// ids are always generated as uuid, so anything else can't be found
func isCustomerID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func customerNotFound() error {
	return echo.NewHTTPError(http.StatusNotFound, customerNotFoundMsg)
}
