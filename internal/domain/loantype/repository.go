package loantype

import "context"

type Repository interface {
	Create(ctx context.Context, t *LoanType) error
	Save(ctx context.Context, t *LoanType) error
	GetByLoanTypeID(ctx context.Context, loanTypeID string) (*LoanType, error)
	List(ctx context.Context) ([]LoanType, error)
}
