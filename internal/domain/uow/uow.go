package uow

import (
	"context"

	"loan-management-backend/internal/domain/emi"
	"loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/loantype"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	LoanTypes loantype.Repository
	Loans     loan.Repository
	EMIs      emi.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside a single storage transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first and passes it in. All
	// mutations of a loan's EMI set go through this so the
	// "all paid -> closed" check is serialized per loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanApplication) error) error
}
