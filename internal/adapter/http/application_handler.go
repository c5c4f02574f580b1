package http

import (
	"net/http"

	"loan-management-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyLoanReq struct {
	LoanTypeID string  `json:"loan_type_id" validate:"required,hex32"`
	Amount     float64 `json:"amount"       validate:"required,dec2"`
	Tenure     int     `json:"tenure"       validate:"required"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}

	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		CustomerID: customerID,
		LoanTypeID: req.LoanTypeID,
		Amount:     decimal.NewFromFloat(req.Amount).Round(2),
		Tenure:     req.Tenure,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ApplicationHandler) MyLoans(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}
	out, err := h.uc.MyLoans(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) LoanByID(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}
	out, err := h.uc.LoanByID(c.Request().Context(), c.Param("loan_id"), customerID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) EMIsByLoan(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	out, err := h.uc.EMIsByLoan(c.Request().Context(), loanID, customerID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) LoanTypes(c echo.Context) error {
	out, err := h.uc.LoanTypes(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
