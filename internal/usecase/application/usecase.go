package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	emiDomain "loan-management-backend/internal/domain/emi"
	loanDomain "loan-management-backend/internal/domain/loan"
	typeDomain "loan-management-backend/internal/domain/loantype"
	"loan-management-backend/internal/domain/rule"
	"loan-management-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	loans     loanDomain.Repository
	loanTypes typeDomain.Repository
	emis      emiDomain.Repository
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(loans loanDomain.Repository, loanTypes typeDomain.Repository, emis emiDomain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, loanTypes: loanTypes, emis: emis, log: log, now: time.Now}
}

// WithClock overrides the time source; tests pin AppliedDate with it.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Submit runs the application rules in their documented order (the first
// failing rule wins, and callers depend on that order) and persists the
// application in applied status.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if !in.Amount.IsPositive() {
		return nil, rule.ErrInvalidAmount
	}

	lt, err := u.loanTypes.GetByLoanTypeID(ctx, in.LoanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrInvalidLoanType
		}
		return nil, err
	}

	if in.Tenure <= 0 {
		return nil, rule.ErrInvalidTenure
	}

	if in.Amount.LessThan(lt.MinAmount) || in.Amount.GreaterThan(lt.MaxAmount) {
		return nil, rule.New(rule.ErrAmountOutOfRange.Code,
			fmt.Sprintf("loan amount must be between %s and %s", lt.MinAmount, lt.MaxAmount))
	}

	if in.Tenure > lt.MaxTenure {
		return nil, rule.New(rule.ErrTenureExceeded.Code,
			fmt.Sprintf("maximum allowed tenure is %d months", lt.MaxTenure))
	}

	pending, err := u.loans.HasPendingApplication(ctx, in.CustomerID, lt.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, rule.ErrDuplicateApplication
	}

	l := &loanDomain.LoanApplication{
		LoanID:      id.NewID32(),
		CustomerID:  in.CustomerID,
		LoanTypeRef: lt.ID,
		LoanTypeID:  lt.LoanTypeID,
		LoanAmount:  in.Amount,
		Tenure:      in.Tenure,
		Status:      loanDomain.StatusApplied,
		AppliedDate: u.now().UTC(),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	u.log.Info("loan application submitted",
		zap.String("loan_id", l.LoanID),
		zap.String("customer_id", l.CustomerID),
		zap.String("loan_type_id", l.LoanTypeID))

	return &SubmitResult{LoanID: l.LoanID, Status: string(l.Status), AppliedDate: l.AppliedDate}, nil
}

// MyLoans lists a customer's applications with their repayment tallies.
func (u *Usecase) MyLoans(ctx context.Context, customerID string) ([]LoanSummary, error) {
	loans, err := u.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	typeNames := map[string]string{}
	out := make([]LoanSummary, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		name, ok := typeNames[l.LoanTypeID]
		if !ok {
			if lt, err := u.loanTypes.GetByLoanTypeID(ctx, l.LoanTypeID); err == nil {
				name = lt.Name
			}
			typeNames[l.LoanTypeID] = name
		}

		s, err := u.summarize(ctx, l, name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// LoanByID returns one application owned by customerID with its tallies.
func (u *Usecase) LoanByID(ctx context.Context, loanID, customerID string) (*LoanSummary, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}
	if l.CustomerID != customerID {
		return nil, rule.ErrNotFound
	}

	var name string
	if lt, err := u.loanTypes.GetByLoanTypeID(ctx, l.LoanTypeID); err == nil {
		name = lt.Name
	}
	s, err := u.summarize(ctx, l, name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (u *Usecase) summarize(ctx context.Context, l *loanDomain.LoanApplication, typeName string) (LoanSummary, error) {
	s := LoanSummary{
		LoanID:        l.LoanID,
		LoanTypeID:    l.LoanTypeID,
		LoanTypeName:  typeName,
		LoanAmount:    l.LoanAmount,
		Tenure:        l.Tenure,
		Status:        l.Status,
		AppliedDate:   l.AppliedDate,
		ReviewedOn:    l.ReviewedOn,
		ReviewedBy:    l.ReviewedBy,
		ReviewRemarks: l.ReviewRemarks,
		TotalPaid:     decimal.Zero,
		Remaining:     decimal.Zero,
	}

	emis, err := u.emis.ListByLoanRef(ctx, l.ID)
	if err != nil {
		return s, err
	}
	s.TotalEMIs = len(emis)
	for _, e := range emis {
		if e.PaidStatus {
			s.PaidEMIs++
			s.TotalPaid = s.TotalPaid.Add(e.Amount)
		} else {
			s.PendingEMIs++
			s.Remaining = s.Remaining.Add(e.Amount)
		}
	}
	return s, nil
}

// EMIsByLoan returns the ordered schedule of a loan owned by customerID.
func (u *Usecase) EMIsByLoan(ctx context.Context, loanID, customerID string) ([]EMIView, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}
	if l.CustomerID != customerID {
		return nil, rule.ErrNotFound
	}

	emis, err := u.emis.ListByLoanRef(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]EMIView, 0, len(emis))
	for _, e := range emis {
		out = append(out, EMIView{
			EMIID:      e.EMIID,
			DueDate:    e.DueDate,
			Amount:     e.Amount,
			PaidStatus: e.PaidStatus,
			PaidOn:     e.PaidOn,
		})
	}
	return out, nil
}

// LoanTypes lists the products available to apply against.
func (u *Usecase) LoanTypes(ctx context.Context) ([]typeDomain.LoanType, error) {
	return u.loanTypes.List(ctx)
}
