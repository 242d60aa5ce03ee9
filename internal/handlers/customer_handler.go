package handlers

import (
	"errors"
	"net/http"

	"customer-lookup/internal/dto"
	apierrors "customer-lookup/internal/errors"
	"customer-lookup/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	lookupService services.CustomerLookupServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(lookupService services.CustomerLookupServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		lookupService: lookupService,
	}
}

// GetCustomer looks up a single customer by ID
// @Summary Get customer by ID
// @Description Retrieve a customer record by its identifier, optionally constrained to a creation-date range. The range applies only when both start_date and end_date are supplied; a lone bound is ignored.
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param start_date query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.GetCustomerResponse "Customer record"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Empty customer ID / VALIDATION_003 - Malformed date"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GetCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("start_date: "+err.Error()))
	}

	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("end_date: "+err.Error()))
	}

	customer, err := h.lookupService.Lookup(ctx, req.CustomerID, startDate, endDate)
	if err != nil {
		return h.sendLookupError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGetCustomerResponse(customer))
}

// sendLookupError maps lookup service errors to standardized API responses
func (h *CustomerHandler) sendLookupError(c echo.Context, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		if notFound.RangeApplied {
			return SendError(c, apierrors.CustomerNotFound,
				apierrors.WithDetails("No customer with this ID was created within the requested date range"))
		}
		return SendError(c, apierrors.CustomerNotFound)
	}

	if errors.Is(err, services.ErrInvalidCustomerID) {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	return SendSystemError(c, err)
}
