package emimock

import (
	"context"
	"time"

	domain "loan-management-backend/internal/domain/emi"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies emi.Repository.
type Repo struct {
	CreateBatchFn                  func(ctx context.Context, emis []domain.EMI) error
	SaveFn                         func(ctx context.Context, e *domain.EMI) error
	GetByEMIIDFn                   func(ctx context.Context, emiID string) (*domain.EMI, error)
	GetByEMIIDForUpdateFn          func(ctx context.Context, emiID string) (*domain.EMI, error)
	ListByLoanRefFn                func(ctx context.Context, loanRef uint64) ([]domain.EMI, error)
	ListUnpaidByLoanRefForUpdateFn func(ctx context.Context, loanRef uint64) ([]domain.EMI, error)
	CountUnpaidByLoanRefFn         func(ctx context.Context, loanRef uint64) (int64, error)
	SumAmountsFn                   func(ctx context.Context, paid bool) (decimal.Decimal, error)
	ListOverdueFn                  func(ctx context.Context, asOf time.Time) ([]domain.EMI, error)
	ListDueBetweenFn               func(ctx context.Context, from, to time.Time) ([]domain.MonthlyRow, error)
}

func (m *Repo) CreateBatch(ctx context.Context, emis []domain.EMI) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, emis)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.EMI) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByEMIID(ctx context.Context, emiID string) (*domain.EMI, error) {
	if m.GetByEMIIDFn != nil {
		return m.GetByEMIIDFn(ctx, emiID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEMIIDForUpdate(ctx context.Context, emiID string) (*domain.EMI, error) {
	if m.GetByEMIIDForUpdateFn != nil {
		return m.GetByEMIIDForUpdateFn(ctx, emiID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLoanRef(ctx context.Context, loanRef uint64) ([]domain.EMI, error) {
	if m.ListByLoanRefFn != nil {
		return m.ListByLoanRefFn(ctx, loanRef)
	}
	return nil, nil
}

func (m *Repo) ListUnpaidByLoanRefForUpdate(ctx context.Context, loanRef uint64) ([]domain.EMI, error) {
	if m.ListUnpaidByLoanRefForUpdateFn != nil {
		return m.ListUnpaidByLoanRefForUpdateFn(ctx, loanRef)
	}
	return nil, nil
}

func (m *Repo) CountUnpaidByLoanRef(ctx context.Context, loanRef uint64) (int64, error) {
	if m.CountUnpaidByLoanRefFn != nil {
		return m.CountUnpaidByLoanRefFn(ctx, loanRef)
	}
	return 0, nil
}

func (m *Repo) SumAmounts(ctx context.Context, paid bool) (decimal.Decimal, error) {
	if m.SumAmountsFn != nil {
		return m.SumAmountsFn(ctx, paid)
	}
	return decimal.Zero, nil
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.EMI, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, nil
}

func (m *Repo) ListDueBetween(ctx context.Context, from, to time.Time) ([]domain.MonthlyRow, error) {
	if m.ListDueBetweenFn != nil {
		return m.ListDueBetweenFn(ctx, from, to)
	}
	return nil, nil
}
