package loantypemock

import (
	"context"

	domain "loan-management-backend/internal/domain/loantype"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies loantype.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, t *domain.LoanType) error
	SaveFn            func(ctx context.Context, t *domain.LoanType) error
	GetByLoanTypeIDFn func(ctx context.Context, loanTypeID string) (*domain.LoanType, error)
	ListFn            func(ctx context.Context) ([]domain.LoanType, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.LoanType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.LoanType) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByLoanTypeID(ctx context.Context, loanTypeID string) (*domain.LoanType, error) {
	if m.GetByLoanTypeIDFn != nil {
		return m.GetByLoanTypeIDFn(ctx, loanTypeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
