package loanmock

import (
	"context"

	domain "loan-management-backend/internal/domain/loan"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies loan.Repository.
// Unset methods fall back to gorm.ErrRecordNotFound / no-ops.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.LoanApplication) error
	SaveFn                  func(ctx context.Context, l *domain.LoanApplication) error
	GetByLoanIDFn           func(ctx context.Context, loanID string) (*domain.LoanApplication, error)
	GetByLoanIDForUpdateFn  func(ctx context.Context, loanID string) (*domain.LoanApplication, error)
	HasPendingApplicationFn func(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error)
	ListByCustomerFn        func(ctx context.Context, customerID string) ([]domain.LoanApplication, error)
	ListByStatusFn          func(ctx context.Context, s domain.Status) ([]domain.LoanApplication, error)
	ListFn                  func(ctx context.Context) ([]domain.LoanApplication, error)
	CountByStatusFn         func(ctx context.Context) ([]domain.StatusCount, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) HasPendingApplication(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error) {
	if m.HasPendingApplicationFn != nil {
		return m.HasPendingApplicationFn(ctx, customerID, loanTypeRef)
	}
	return false, nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.LoanApplication, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.LoanApplication, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return nil, nil
}
