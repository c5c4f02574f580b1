package review

import (
	"context"
	"errors"
	"time"

	emiDomain "loan-management-backend/internal/domain/emi"
	"loan-management-backend/internal/domain/identity"
	loanDomain "loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/rule"
	"loan-management-backend/internal/domain/uow"
	emicalc "loan-management-backend/pkg/emi"
	"loan-management-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase drives the officer-facing half of the loan state machine.
// Approval materializes the full EMI schedule inside the same
// transaction as the status change: both happen or neither does.
type Usecase struct {
	loans     loanDomain.Repository
	directory identity.Directory
	uow       uow.UnitOfWork
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(loans loanDomain.Repository, directory identity.Directory, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, directory: directory, uow: tx, log: log, now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// MarkUnderReview moves an applied loan into the review queue.
func (u *Usecase) MarkUnderReview(ctx context.Context, loanID, reviewerID, remarks string) (*ReviewResult, error) {
	var out *ReviewResult
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		if err := l.MarkUnderReview(reviewerID, remarks, u.now()); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = resultFrom(l, 0, decimal.Zero)
		return nil
	})
	if err != nil {
		return nil, translateLoanErr(err)
	}
	return out, nil
}

// Review applies the officer's decision. On approval the EMI schedule is
// generated (tenure rows, equal amounts, due dates one calendar month
// apart from the review time) before the transaction commits.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewResult, error) {
	if in.Decision != DecisionApproved && in.Decision != DecisionRejected {
		return nil, rule.New("INVALID_STATUS", "decision must be approved or rejected")
	}

	var out *ReviewResult
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		now := u.now()

		if in.Decision == DecisionRejected {
			if err := l.Reject(in.ReviewerID, in.Remarks, now); err != nil {
				return err
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			out = resultFrom(l, 0, decimal.Zero)
			return nil
		}

		if err := l.Approve(in.ReviewerID, in.Remarks, now); err != nil {
			return err
		}

		lt, err := r.LoanTypes.GetByLoanTypeID(ctx, l.LoanTypeID)
		if err != nil {
			return err
		}
		amount, err := emicalc.Calculate(l.LoanAmount, lt.ROI, l.Tenure)
		if err != nil {
			return err
		}

		schedule := make([]emiDomain.EMI, 0, l.Tenure)
		for _, due := range emicalc.DueDates(now.UTC(), l.Tenure) {
			schedule = append(schedule, emiDomain.EMI{
				EMIID:   id.NewID32(),
				LoanRef: l.ID,
				LoanID:  l.LoanID,
				DueDate: due,
				Amount:  amount,
			})
		}
		if err := r.EMIs.CreateBatch(ctx, schedule); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = resultFrom(l, len(schedule), amount)
		return nil
	})
	if err != nil {
		return nil, translateLoanErr(err)
	}

	u.log.Info("loan reviewed",
		zap.String("loan_id", in.LoanID),
		zap.String("reviewer_id", in.ReviewerID),
		zap.String("decision", string(in.Decision)))
	return out, nil
}

// Applications lists the officer review queue, optionally filtered by
// status, with customer emails resolved through the directory.
func (u *Usecase) Applications(ctx context.Context, status loanDomain.Status) ([]OfficerView, error) {
	var (
		loans []loanDomain.LoanApplication
		err   error
	)
	if status == "" {
		loans, err = u.loans.List(ctx)
	} else {
		loans, err = u.loans.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OfficerView, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		email, err := u.directory.ResolveEmail(ctx, l.CustomerID)
		if err != nil {
			email = l.CustomerID
		}
		out = append(out, OfficerView{
			LoanID:        l.LoanID,
			CustomerID:    l.CustomerID,
			CustomerEmail: email,
			LoanTypeID:    l.LoanTypeID,
			LoanAmount:    l.LoanAmount,
			Tenure:        l.Tenure,
			Status:        l.Status,
			AppliedDate:   l.AppliedDate,
			ReviewedOn:    l.ReviewedOn,
			ReviewedBy:    l.ReviewedBy,
			ReviewRemarks: l.ReviewRemarks,
		})
	}
	return out, nil
}

func resultFrom(l *loanDomain.LoanApplication, emiCount int, emiAmount decimal.Decimal) *ReviewResult {
	return &ReviewResult{
		LoanID:        l.LoanID,
		Status:        l.Status,
		ReviewedOn:    l.ReviewedOn,
		ReviewedBy:    l.ReviewedBy,
		ReviewRemarks: l.ReviewRemarks,
		EMICount:      emiCount,
		EMIAmount:     emiAmount,
	}
}

func translateLoanErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rule.ErrNotFound
	}
	return err
}
