package payment

import (
	"time"

	"loan-management-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// Receipt is returned for both single and pay-all settlements.
type Receipt struct {
	ReceiptID  string          `json:"receipt_id"`
	LoanID     string          `json:"loan_id"`
	EMIID      string          `json:"emi_id,omitempty"`
	PaidCount  int             `json:"paid_count"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidOn     time.Time       `json:"paid_on"`
	LoanStatus loan.Status     `json:"loan_status"`
}
