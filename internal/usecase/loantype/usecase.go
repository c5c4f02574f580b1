package loantype

import (
	"context"
	"errors"
	"time"

	typeDomain "loan-management-backend/internal/domain/loantype"
	"loan-management-backend/internal/domain/rule"
	"loan-management-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase is the admin surface for loan products. Edits never touch
// EMIs already issued: the schedule copies the rate at approval time.
type Usecase struct {
	types typeDomain.Repository
	log   *zap.Logger
}

func NewUsecase(types typeDomain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{types: types, log: log}
}

type UpsertInput struct {
	Name      string
	ROI       decimal.Decimal
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	MaxTenure int
}

func (u *Usecase) Create(ctx context.Context, in UpsertInput) (*typeDomain.LoanType, error) {
	t := &typeDomain.LoanType{
		LoanTypeID: id.NewID32(),
		Name:       in.Name,
		ROI:        in.ROI,
		MinAmount:  in.MinAmount,
		MaxAmount:  in.MaxAmount,
		MaxTenure:  in.MaxTenure,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := u.types.Create(ctx, t); err != nil {
		return nil, err
	}
	u.log.Info("loan type created", zap.String("loan_type_id", t.LoanTypeID), zap.String("name", t.Name))
	return t, nil
}

func (u *Usecase) Update(ctx context.Context, loanTypeID string, in UpsertInput) (*typeDomain.LoanType, error) {
	t, err := u.types.GetByLoanTypeID(ctx, loanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}
	t.Name = in.Name
	t.ROI = in.ROI
	t.MinAmount = in.MinAmount
	t.MaxAmount = in.MaxAmount
	t.MaxTenure = in.MaxTenure
	t.UpdatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := u.types.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) List(ctx context.Context) ([]typeDomain.LoanType, error) {
	return u.types.List(ctx)
}
