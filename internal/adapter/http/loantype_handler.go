package http

import (
	"net/http"

	"loan-management-backend/internal/usecase/loantype"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanTypeHandler struct{ uc *loantype.Usecase }

func NewLoanTypeHandler(uc *loantype.Usecase) *LoanTypeHandler {
	return &LoanTypeHandler{uc: uc}
}

type loanTypeReq struct {
	Name      string  `json:"name"       validate:"required"`
	ROI       float64 `json:"roi"        validate:"required,gt=0,dec2"`
	MinAmount float64 `json:"min_amount" validate:"required,gt=0,dec2"`
	MaxAmount float64 `json:"max_amount" validate:"required,gt=0,dec2"`
	MaxTenure int     `json:"max_tenure" validate:"required,gt=0"`
}

func (r loanTypeReq) toInput() loantype.UpsertInput {
	return loantype.UpsertInput{
		Name:      r.Name,
		ROI:       decimal.NewFromFloat(r.ROI).Round(2),
		MinAmount: decimal.NewFromFloat(r.MinAmount).Round(2),
		MaxAmount: decimal.NewFromFloat(r.MaxAmount).Round(2),
		MaxTenure: r.MaxTenure,
	}
}

// POST /admin/loan-types
func (h *LoanTypeHandler) Create(c echo.Context) error {
	var req loanTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// PUT /admin/loan-types/:loan_type_id
func (h *LoanTypeHandler) Update(c echo.Context) error {
	loanTypeID := c.Param("loan_type_id")
	if !reHex32.MatchString(loanTypeID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_type_id must be 32-char lowercase hex"})
	}
	var req loanTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Update(c.Request().Context(), loanTypeID, req.toInput())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /admin/loan-types
func (h *LoanTypeHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
