package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/internal/repository"
	"github.com/umalmyha/customer-directory/internal/service"
	"github.com/umalmyha/customer-directory/internal/validation"
)

const validCustomerJSON = `{
	"name":"Rahim Uddin",
	"phone":"+8801711000000",
	"address":"House 12, Road 4, Mirpur",
	"home":"12",
	"road":"4",
	"block":"C",
	"town":"Dhaka"
}`

type customerServiceMock struct {
	mock.Mock
}

func (m *customerServiceMock) FindAll(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*model.Customer)
	return customers, args.Error(1)
}

func (m *customerServiceMock) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *customerServiceMock) Create(ctx context.Context, nc *model.NewCustomer) (*model.Customer, error) {
	args := m.Called(ctx, nc)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *customerServiceMock) Update(ctx context.Context, id string, patch *model.PatchCustomer) (*model.Customer, error) {
	args := m.Called(ctx, id, patch)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *customerServiceMock) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type handlersTestSuite struct {
	suite.Suite
	app                 *echo.Echo
	customerHTTPHandler *CustomerHTTPHandler
}

func (s *handlersTestSuite) SetupSuite() {
	v, err := validation.New()
	s.Require().NoError(err, "failed to build echo validator")

	s.app = echo.New()
	s.app.Validator = v
	s.app.HTTPErrorHandler = HTTPErrorHandler
}

func (s *handlersTestSuite) SetupTest() {
	customerSvc := service.NewCustomerService(repository.NewMemoryCustomerRepository())
	s.customerHTTPHandler = NewCustomerHTTPHandler(customerSvc)
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestCustomerHTTPHandler() {
	t := s.T()
	require := s.Require()

	var created model.Customer

	t.Log("post customer with wrong payload")
	{
		wrongPayloadJSON := `{"name":"Rahim","phone":`
		c, _ := s.echoPostContext("/api/customers", wrongPayloadJSON)
		err := s.customerHTTPHandler.Post(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("post customer without name")
	{
		invalidJSON := `{"phone":"+8801711000000","address":"Mirpur","home":"12","road":"4","block":"C","town":"Dhaka"}`
		c, _ := s.echoPostContext("/api/customers", invalidJSON)
		err := s.customerHTTPHandler.Post(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
		require.Contains(err.Error(), "name", "issue must mention missing field")
	}

	t.Log("post customer successfully")
	{
		payload := `{
			"id":"11111111-1111-1111-1111-111111111111",
			"createdAt":"2001-01-01T00:00:00Z",
			"updatedAt":"2001-01-01T00:00:00Z",
			"vip":true,
			"name":"Rahim Uddin",
			"phone":"+8801711000000",
			"address":"House 12, Road 4, Mirpur",
			"home":"12",
			"road":"4",
			"block":"C",
			"town":"Dhaka"
		}`
		c, rec := s.echoPostContext("/api/customers", payload)
		err := s.customerHTTPHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response code must be Created")

		var body map[string]any
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &body), "failed to parse response")
		require.NotContains(body, "vip", "unknown field must not leak into record")

		require.NoError(json.Unmarshal(rec.Body.Bytes(), &created), "failed to parse customer")
		require.NotEqual("11111111-1111-1111-1111-111111111111", created.ID, "id must be assigned by server")
		require.NotEqual(2001, created.CreatedAt.Year(), "creation time must be assigned by server")
		require.False(created.UpdatedAt.IsZero(), "update time must be assigned")
		require.Equal("Rahim Uddin", created.Name)
		require.Equal("Dhaka", created.Town)
	}

	t.Log("get customer by id successfully")
	{
		c, rec := s.echoIDContext(http.MethodGet, "/api/customers", created.ID, "")
		err := s.customerHTTPHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")

		var found model.Customer
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &found), "failed to parse customer")
		require.Equal(created, found, "fetched customer must be equal to created one")
	}

	t.Log("get missing customer")
	{
		c, _ := s.echoIDContext(http.MethodGet, "/api/customers", uuid.NewString(), "")
		err := s.customerHTTPHandler.Get(c)
		s.requireHTTPError(err, http.StatusNotFound)
	}

	t.Log("get customer with malformed id")
	{
		c, _ := s.echoIDContext(http.MethodGet, "/api/customers", "1111", "")
		err := s.customerHTTPHandler.Get(c)
		s.requireHTTPError(err, http.StatusNotFound)
	}

	t.Log("update customer with invalid data in payload")
	{
		c, _ := s.echoIDContext(http.MethodPut, "/api/customers", created.ID, `{"phone":""}`)
		err := s.customerHTTPHandler.Update(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("update customer partially")
	{
		c, rec := s.echoIDContext(http.MethodPatch, "/api/customers", created.ID, `{"town":"Sylhet","id":"11111111-1111-1111-1111-111111111111"}`)
		err := s.customerHTTPHandler.Update(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")

		var updated model.Customer
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &updated), "failed to parse customer")
		require.Equal(created.ID, updated.ID, "id must not be changed")
		require.Equal("Sylhet", updated.Town)
		require.Equal(created.Name, updated.Name, "absent field must be kept")
		require.Equal(created.CreatedAt, updated.CreatedAt, "creation time must be kept")
	}

	t.Log("update missing customer")
	{
		c, _ := s.echoIDContext(http.MethodPut, "/api/customers", uuid.NewString(), `{"town":"Sylhet"}`)
		err := s.customerHTTPHandler.Update(c)
		s.requireHTTPError(err, http.StatusNotFound)
	}

	t.Log("get all customers successfully")
	{
		c, rec := s.echoGetContext("/api/customers")
		err := s.customerHTTPHandler.GetAll(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")

		var customers []model.Customer
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &customers), "failed to parse customers")
		require.Len(customers, 1)
		require.Equal(created.ID, customers[0].ID)
	}

	t.Log("delete customer by id")
	{
		c, rec := s.echoIDContext(http.MethodDelete, "/api/customers", created.ID, "")
		err := s.customerHTTPHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status must be No Content")
		require.Zero(rec.Body.Len(), "response body must be empty")
	}

	t.Log("delete already deleted customer")
	{
		c, _ := s.echoIDContext(http.MethodDelete, "/api/customers", created.ID, "")
		err := s.customerHTTPHandler.DeleteByID(c)
		s.requireHTTPError(err, http.StatusNotFound)
	}
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestCustomerHTTPHandlerInternalErrors() {
	t := s.T()
	require := s.Require()

	customerSvcMock := new(customerServiceMock)
	h := NewCustomerHTTPHandler(customerSvcMock)
	storageErr := errors.New("connection refused")
	id := uuid.NewString()

	customerSvcMock.On("FindAll", mock.Anything).Return(nil, storageErr)
	customerSvcMock.On("FindByID", mock.Anything, id).Return(nil, storageErr)
	customerSvcMock.On("Create", mock.Anything, mock.AnythingOfType("*model.NewCustomer")).Return(nil, storageErr)
	customerSvcMock.On("Update", mock.Anything, id, mock.AnythingOfType("*model.PatchCustomer")).Return(nil, storageErr)
	customerSvcMock.On("DeleteByID", mock.Anything, id).Return(storageErr)

	cases := []struct {
		name string
		call func() (*httptest.ResponseRecorder, error)
		msg  string
	}{
		{
			name: "get all",
			call: func() (*httptest.ResponseRecorder, error) {
				c, rec := s.echoGetContext("/api/customers")
				return rec, h.GetAll(c)
			},
			msg: "Failed to fetch customers",
		},
		{
			name: "get",
			call: func() (*httptest.ResponseRecorder, error) {
				c, rec := s.echoIDContext(http.MethodGet, "/api/customers", id, "")
				return rec, h.Get(c)
			},
			msg: "Failed to fetch customer",
		},
		{
			name: "post",
			call: func() (*httptest.ResponseRecorder, error) {
				c, rec := s.echoPostContext("/api/customers", validCustomerJSON)
				return rec, h.Post(c)
			},
			msg: "Failed to create customer",
		},
		{
			name: "update",
			call: func() (*httptest.ResponseRecorder, error) {
				c, rec := s.echoIDContext(http.MethodPut, "/api/customers", id, `{"name":"John"}`)
				return rec, h.Update(c)
			},
			msg: "Failed to update customer",
		},
		{
			name: "delete",
			call: func() (*httptest.ResponseRecorder, error) {
				c, rec := s.echoIDContext(http.MethodDelete, "/api/customers", id, "")
				return rec, h.DeleteByID(c)
			},
			msg: "Failed to delete customer",
		},
	}

	for _, tc := range cases {
		t.Logf("%s with failing storage", tc.name)

		rec, err := tc.call()
		s.requireHTTPError(err, http.StatusInternalServerError)
		require.ErrorIs(err, storageErr, "storage error must be kept as internal")

		s.app.HTTPErrorHandler(err, s.app.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
		require.Equal(http.StatusInternalServerError, rec.Code)
		require.JSONEq(fmt.Sprintf(`{"error":%q}`, tc.msg), rec.Body.String(), "storage error must not leak to client")
	}

	customerSvcMock.AssertExpectations(t)
}

func (s *handlersTestSuite) TestNotFoundFromService() {
	require := s.Require()

	customerSvcMock := new(customerServiceMock)
	h := NewCustomerHTTPHandler(customerSvcMock)
	id := uuid.NewString()
	nfErr := apperrors.NewEntryNotFoundErr("customer", id)

	customerSvcMock.On("Update", mock.Anything, id, mock.AnythingOfType("*model.PatchCustomer")).Return(nil, nfErr).Once()
	customerSvcMock.On("DeleteByID", mock.Anything, id).Return(fmt.Errorf("delete failed - %w", nfErr)).Once()

	c, rec := s.echoIDContext(http.MethodPut, "/api/customers", id, `{"name":"John"}`)
	err := h.Update(c)
	s.requireHTTPError(err, http.StatusNotFound)

	s.app.HTTPErrorHandler(err, c)
	require.Equal(http.StatusNotFound, rec.Code)
	require.JSONEq(`{"error":"Customer not found"}`, rec.Body.String())

	c, _ = s.echoIDContext(http.MethodDelete, "/api/customers", id, "")
	s.requireHTTPError(h.DeleteByID(c), http.StatusNotFound)

	customerSvcMock.AssertExpectations(s.T())
}

func (s *handlersTestSuite) TestHTTPErrorHandler() {
	require := s.Require()

	s.T().Log("payload error is rendered with details")
	{
		pldErr := &validation.PayloadError{}
		pldErr.Violation("name", "name is a required field")

		c, rec := s.echoGetContext("/api/customers")
		HTTPErrorHandler(pldErr, c)
		require.Equal(http.StatusBadRequest, rec.Code)
		require.JSONEq(`{
			"error":"name is a required field",
			"details":{"formErrors":[],"fieldErrors":{"name":["name is a required field"]}}
		}`, rec.Body.String())
	}

	s.T().Log("echo error message is rendered as error")
	{
		c, rec := s.echoGetContext("/api/customers")
		HTTPErrorHandler(echo.NewHTTPError(http.StatusUnauthorized, "invalid access token"), c)
		require.Equal(http.StatusUnauthorized, rec.Code)
		require.JSONEq(`{"error":"invalid access token"}`, rec.Body.String())
	}

	s.T().Log("unknown error is hidden behind generic message")
	{
		c, rec := s.echoGetContext("/api/customers")
		HTTPErrorHandler(errors.New("pq: relation customers does not exist"), c)
		require.Equal(http.StatusInternalServerError, rec.Code)
		require.JSONEq(`{"error":"Internal Server Error"}`, rec.Body.String())
	}
}

func (s *handlersTestSuite) requireHTTPError(err error, code int) {
	var httpErr *echo.HTTPError
	s.Require().ErrorAs(err, &httpErr, "error must be echo error")
	s.Require().Equal(code, httpErr.Code, "unexpected status code")
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoIDContext(method, target, id, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, fmt.Sprintf("%s/%s", target, id), strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
