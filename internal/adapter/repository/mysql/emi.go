package mysql

import (
	"context"
	"time"

	emiDomain "loan-management-backend/internal/domain/emi"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EMIRepository struct{ db *gorm.DB }

func NewEMIRepository(db *gorm.DB) *EMIRepository { return &EMIRepository{db: db} }

func (r *EMIRepository) CreateBatch(ctx context.Context, emis []emiDomain.EMI) error {
	if len(emis) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&emis).Error
}

func (r *EMIRepository) Save(ctx context.Context, e *emiDomain.EMI) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EMIRepository) GetByEMIID(ctx context.Context, emiID string) (*emiDomain.EMI, error) {
	var out emiDomain.EMI
	res := r.db.WithContext(ctx).Where("emi_id = ?", emiID).First(&out)
	return &out, res.Error
}

func (r *EMIRepository) GetByEMIIDForUpdate(ctx context.Context, emiID string) (*emiDomain.EMI, error) {
	var out emiDomain.EMI
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("emi_id = ?", emiID).
		First(&out)
	return &out, res.Error
}

func (r *EMIRepository) ListByLoanRef(ctx context.Context, loanRef uint64) ([]emiDomain.EMI, error) {
	var out []emiDomain.EMI
	res := r.db.WithContext(ctx).
		Where("loan_ref = ?", loanRef).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *EMIRepository) ListUnpaidByLoanRefForUpdate(ctx context.Context, loanRef uint64) ([]emiDomain.EMI, error) {
	var out []emiDomain.EMI
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_ref = ? AND paid_status = ?", loanRef, false).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *EMIRepository) CountUnpaidByLoanRef(ctx context.Context, loanRef uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&emiDomain.EMI{}).
		Where("loan_ref = ? AND paid_status = ?", loanRef, false).
		Count(&n)
	return n, res.Error
}

func (r *EMIRepository) SumAmounts(ctx context.Context, paid bool) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	res := r.db.WithContext(ctx).
		Model(&emiDomain.EMI{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("paid_status = ?", paid).
		Scan(&row)
	return row.Total, res.Error
}

func (r *EMIRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]emiDomain.EMI, error) {
	var out []emiDomain.EMI
	res := r.db.WithContext(ctx).
		Where("paid_status = ? AND due_date < ?", false, asOf).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *EMIRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]emiDomain.MonthlyRow, error) {
	var out []emiDomain.MonthlyRow
	res := r.db.WithContext(ctx).
		Model(&emiDomain.EMI{}).
		Select("emis.emi_id, emis.loan_id, loan_applications.customer_id, emis.due_date, emis.amount, emis.paid_status").
		Joins("JOIN loan_applications ON loan_applications.id = emis.loan_ref").
		Where("emis.due_date >= ? AND emis.due_date < ?", from, to).
		Order("emis.due_date ASC").
		Scan(&out)
	return out, res.Error
}
