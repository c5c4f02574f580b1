package application

import (
	"time"

	"loan-management-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	CustomerID string
	LoanTypeID string
	Amount     decimal.Decimal
	Tenure     int
}

type SubmitResult struct {
	LoanID      string    `json:"loan_id"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
}

// LoanSummary is a customer-facing view of one application with its
// repayment progress.
type LoanSummary struct {
	LoanID        string          `json:"loan_id"`
	LoanTypeID    string          `json:"loan_type_id"`
	LoanTypeName  string          `json:"loan_type_name"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	Tenure        int             `json:"tenure"`
	Status        loan.Status     `json:"status"`
	AppliedDate   time.Time       `json:"applied_date"`
	ReviewedOn    *time.Time      `json:"reviewed_on,omitempty"`
	ReviewedBy    string          `json:"reviewed_by,omitempty"`
	ReviewRemarks string          `json:"review_remarks,omitempty"`
	TotalEMIs     int             `json:"total_emis"`
	PaidEMIs      int             `json:"paid_emis"`
	PendingEMIs   int             `json:"pending_emis"`
	TotalPaid     decimal.Decimal `json:"total_paid_amount"`
	Remaining     decimal.Decimal `json:"remaining_amount"`
}

type EMIView struct {
	EMIID      string          `json:"emi_id"`
	DueDate    time.Time       `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	PaidStatus bool            `json:"paid_status"`
	PaidOn     *time.Time      `json:"paid_on,omitempty"`
}
