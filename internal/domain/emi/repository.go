package emi

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRow is one installment in the monthly report window.
type MonthlyRow struct {
	EMIID      string          `json:"emi_id"`
	LoanID     string          `json:"loan_id"`
	CustomerID string          `json:"customer_id"`
	DueDate    time.Time       `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	PaidStatus bool            `json:"paid_status"`
}

type Repository interface {
	// CreateBatch inserts a full schedule; callers invoke it inside the
	// approval transaction so the schedule is all-or-nothing.
	CreateBatch(ctx context.Context, emis []EMI) error
	Save(ctx context.Context, e *EMI) error
	GetByEMIID(ctx context.Context, emiID string) (*EMI, error)
	// GetByEMIIDForUpdate locks the installment row for the surrounding
	// transaction.
	GetByEMIIDForUpdate(ctx context.Context, emiID string) (*EMI, error)
	ListByLoanRef(ctx context.Context, loanRef uint64) ([]EMI, error)
	ListUnpaidByLoanRefForUpdate(ctx context.Context, loanRef uint64) ([]EMI, error)
	CountUnpaidByLoanRef(ctx context.Context, loanRef uint64) (int64, error)
	// SumAmounts returns the EMI amount total filtered by paid status.
	SumAmounts(ctx context.Context, paid bool) (decimal.Decimal, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]EMI, error)
	ListDueBetween(ctx context.Context, from, to time.Time) ([]MonthlyRow, error)
}
