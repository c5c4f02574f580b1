package mysql

import (
	"context"

	loanDomain "loan-management-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate locks the loan row for the duration of the
// surrounding transaction. Approval and payment flows go through this.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) HasPendingApplication(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Where("customer_id = ? AND loan_type_ref = ? AND status = ?", customerID, loanTypeRef, loanDomain.StatusApplied).
		Count(&n)
	return n > 0, res.Error
}

func (r *LoanRepository) ListByCustomer(ctx context.Context, customerID string) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, s loanDomain.Status) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).Order("applied_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountByStatus(ctx context.Context) ([]loanDomain.StatusCount, error) {
	var out []loanDomain.StatusCount
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(loan_amount), 0) AS total_amount").
		Group("status").
		Order("count DESC").
		Scan(&out)
	return out, res.Error
}
