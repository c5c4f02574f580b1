package mysql

import (
	"context"
	"errors"
	"testing"

	loanDomain "loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/uow"
	"loan-management-backend/pkg/id"
)

func TestGormUoW_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.Create(ctx, makeLoan(loanID, id.NewID32(), 1, loanDomain.StatusApplied))
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}

	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not committed: %v", err)
	}
}

func TestGormUoW_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("mid-transition failure")
	loanID := id.NewID32()

	// Approval semantics: if anything after the status write fails, the
	// whole transition must vanish.
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(loanID, id.NewID32(), 1, loanDomain.StatusApproved)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err == nil {
		t.Fatal("loan persisted despite rollback")
	}
}
