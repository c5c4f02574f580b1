package review

import (
	"time"

	"loan-management-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// Decision is the officer's verdict on a reviewed application.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

type ReviewInput struct {
	LoanID     string
	ReviewerID string
	Decision   Decision
	Remarks    string
}

type ReviewResult struct {
	LoanID        string          `json:"loan_id"`
	Status        loan.Status     `json:"status"`
	ReviewedOn    *time.Time      `json:"reviewed_on"`
	ReviewedBy    string          `json:"reviewed_by"`
	ReviewRemarks string          `json:"review_remarks"`
	EMICount      int             `json:"emi_count"`
	EMIAmount     decimal.Decimal `json:"emi_amount"`
}

// OfficerView is the review-queue row for the officer dashboard.
type OfficerView struct {
	LoanID        string          `json:"loan_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerEmail string          `json:"customer_email"`
	LoanTypeID    string          `json:"loan_type_id"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	Tenure        int             `json:"tenure"`
	Status        loan.Status     `json:"status"`
	AppliedDate   time.Time       `json:"applied_date"`
	ReviewedOn    *time.Time      `json:"reviewed_on,omitempty"`
	ReviewedBy    string          `json:"reviewed_by,omitempty"`
	ReviewRemarks string          `json:"review_remarks,omitempty"`
}
