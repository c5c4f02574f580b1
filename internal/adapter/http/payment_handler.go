package http

import (
	"net/http"

	"loan-management-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// PayEMI settles one installment. PUT /emis/:emi_id/pay
func (h *PaymentHandler) PayEMI(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}
	emiID := c.Param("emi_id")
	if !reHex32.MatchString(emiID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "emi_id must be 32-char lowercase hex"})
	}

	out, err := h.uc.PayEMI(c.Request().Context(), emiID, customerID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// PayAll settles every remaining installment of the loan in one go.
// POST /loans/:loan_id/pay-all
func (h *PaymentHandler) PayAll(c echo.Context) error {
	customerID, ok := callerID(c, HeaderCustomerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderCustomerID})
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_id must be 32-char lowercase hex"})
	}

	out, err := h.uc.PayAll(c.Request().Context(), loanID, customerID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
