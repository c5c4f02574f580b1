package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusCount is a grouped reporting row (count + total principal).
type StatusCount struct {
	Status      Status          `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type Repository interface {
	Create(ctx context.Context, l *LoanApplication) error
	Save(ctx context.Context, l *LoanApplication) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanApplication, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the
	// surrounding transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*LoanApplication, error)
	// HasPendingApplication reports whether the customer already has an
	// application for the loan type still in applied status.
	HasPendingApplication(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error)
	ListByCustomer(ctx context.Context, customerID string) ([]LoanApplication, error)
	ListByStatus(ctx context.Context, s Status) ([]LoanApplication, error)
	List(ctx context.Context) ([]LoanApplication, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
