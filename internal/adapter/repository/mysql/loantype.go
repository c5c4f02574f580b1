package mysql

import (
	"context"

	typeDomain "loan-management-backend/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) Create(ctx context.Context, t *typeDomain.LoanType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LoanTypeRepository) Save(ctx context.Context, t *typeDomain.LoanType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *LoanTypeRepository) GetByLoanTypeID(ctx context.Context, loanTypeID string) (*typeDomain.LoanType, error) {
	var out typeDomain.LoanType
	res := r.db.WithContext(ctx).Where("loan_type_id = ?", loanTypeID).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) List(ctx context.Context) ([]typeDomain.LoanType, error) {
	var out []typeDomain.LoanType
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
