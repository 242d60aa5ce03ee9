package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"customer-lookup/internal/models"
	"customer-lookup/internal/services"
	"customer-lookup/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockLookupService *service_mocks.MockCustomerLookupServiceInterface
	handler           *CustomerHandler
	echo              *echo.Echo
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLookupService = service_mocks.NewMockCustomerLookupServiceInterface(s.ctrl)
	s.handler = NewCustomerHandler(s.mockLookupService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) newLookupContext(id, query string) (echo.Context, *httptest.ResponseRecorder) {
	target := "/api/v1/customers/" + url.PathEscape(id)
	if query != "" {
		target += "?" + query
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func (s *CustomerHandlerTestSuite) decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Success() {
	customer := &models.Customer{
		ID:        "C1",
		Name:      "Ada Lovelace",
		CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", gomock.Nil(), gomock.Nil()).
		Return(customer, nil)

	c, rec := s.newLookupContext("C1", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("C1", resp.ID)
	s.Equal("Ada Lovelace", resp.Name)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_WithDateRange() {
	customer := &models.Customer{
		ID:        "C1",
		Name:      "Ada Lovelace",
		CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", &start, &end).
		Return(customer, nil)

	c, rec := s.newLookupContext("C1", "start_date=2023-01-01&end_date=2023-12-31")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_LoneBoundPassedThrough() {
	// The both-or-neither policy lives in the service; the handler forwards
	// whatever bounds were supplied
	customer := &models.Customer{ID: "C1", Name: "Ada Lovelace"}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", &start, gomock.Nil()).
		Return(customer, nil)

	c, rec := s.newLookupContext("C1", "start_date=2023-01-01")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_RFC3339Dates() {
	customer := &models.Customer{ID: "C1", Name: "Ada Lovelace"}
	start := time.Date(2023, 1, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)

	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", &start, &end).
		Return(customer, nil)

	c, rec := s.newLookupContext("C1",
		"start_date=2023-01-01T10%3A30%3A00Z&end_date=2023-12-31T23%3A59%3A59Z")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", gomock.Nil(), gomock.Nil()).
		Return(nil, &services.NotFoundError{CustomerID: "C1"})

	c, rec := s.newLookupContext("C1", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CUSTOMER_001", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFoundWithRange() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", &start, &end).
		Return(nil, &services.NotFoundError{CustomerID: "C1", RangeApplied: true})

	c, rec := s.newLookupContext("C1", "start_date=2024-01-01&end_date=2024-12-31")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CUSTOMER_001", s.decodeErrorCode(rec))
	s.Contains(rec.Body.String(), "date range")
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_WhitespaceID_NoServiceCall() {
	// No EXPECT on the service: request validation rejects the ID first
	c, rec := s.newLookupContext("   ", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CUSTOMER_002", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_EmptyID_NoServiceCall() {
	c, rec := s.newLookupContext("", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CUSTOMER_002", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_WrappedInvalidIDFromService() {
	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", gomock.Nil(), gomock.Nil()).
		Return(nil, fmt.Errorf("lookup: %w", services.ErrInvalidCustomerID))

	c, rec := s.newLookupContext("C1", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CUSTOMER_002", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_WrappedNotFoundFromService() {
	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", gomock.Nil(), gomock.Nil()).
		Return(nil, fmt.Errorf("lookup: %w", &services.NotFoundError{CustomerID: "C1"}))

	c, rec := s.newLookupContext("C1", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CUSTOMER_001", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_MalformedStartDate_NoServiceCall() {
	// No EXPECT on the service: the handler must reject before looking up
	c, rec := s.newLookupContext("C1", "start_date=not-a-date")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_MalformedEndDate_NoServiceCall() {
	c, rec := s.newLookupContext("C1", "end_date=31-12-2023")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.decodeErrorCode(rec))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_StoreError() {
	s.mockLookupService.EXPECT().
		Lookup(gomock.Any(), "C1", gomock.Nil(), gomock.Nil()).
		Return(nil, errors.New("connection refused"))

	c, rec := s.newLookupContext("C1", "")
	s.NoError(s.handler.GetCustomer(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decodeErrorCode(rec))

	// Internal details must not leak to the client
	s.NotContains(rec.Body.String(), "connection refused")
}
