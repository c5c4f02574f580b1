package payment

import (
	"context"
	"errors"
	"time"

	emiDomain "loan-management-backend/internal/domain/emi"
	loanDomain "loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/rule"
	"loan-management-backend/internal/domain/uow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase reconciles payments against the EMI schedule. Every mutation
// runs under the per-loan row lock so the "all paid -> closed" check
// cannot race between sibling EMI payments.
type Usecase struct {
	emis emiDomain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
	now  func() time.Time
}

func NewUsecase(emis emiDomain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{emis: emis, uow: tx, log: log, now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// PayEMI settles one installment owned by customerID. When the last
// unpaid EMI of the loan is settled the loan closes in the same
// transaction.
func (u *Usecase) PayEMI(ctx context.Context, emiID, customerID string) (*Receipt, error) {
	// Resolve the owning loan first; the lock is taken on the loan row.
	probe, err := u.emis.GetByEMIID(ctx, emiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}

	var out *Receipt
	err = u.uow.WithinLoanTx(ctx, probe.LoanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		if l.CustomerID != customerID {
			return rule.ErrNotFound
		}
		if l.Status != loanDomain.StatusApproved {
			return rule.ErrLoanNotApproved
		}

		e, err := r.EMIs.GetByEMIIDForUpdate(ctx, emiID)
		if err != nil {
			return err
		}
		paidOn := u.now()
		if err := e.MarkPaid(paidOn); err != nil {
			return err
		}
		if err := r.EMIs.Save(ctx, e); err != nil {
			return err
		}

		unpaid, err := r.EMIs.CountUnpaidByLoanRef(ctx, l.ID)
		if err != nil {
			return err
		}
		if unpaid == 0 {
			if err := l.Close(); err != nil {
				return err
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		out = &Receipt{
			ReceiptID:  uuid.NewString(),
			LoanID:     l.LoanID,
			EMIID:      e.EMIID,
			PaidCount:  1,
			PaidAmount: e.Amount,
			PaidOn:     *e.PaidOn,
			LoanStatus: l.Status,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}

	u.log.Info("emi paid",
		zap.String("emi_id", emiID),
		zap.String("loan_id", out.LoanID),
		zap.String("loan_status", string(out.LoanStatus)))
	return out, nil
}

// PayAll settles every unpaid installment of the loan with a single
// timestamp and closes it. Rejected when nothing is left to pay.
func (u *Usecase) PayAll(ctx context.Context, loanID, customerID string) (*Receipt, error) {
	var out *Receipt
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		if l.CustomerID != customerID {
			return rule.ErrNotFound
		}
		if l.Status != loanDomain.StatusApproved {
			return rule.ErrLoanNotApproved
		}

		unpaid, err := r.EMIs.ListUnpaidByLoanRefForUpdate(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(unpaid) == 0 {
			return rule.ErrAlreadyPaid
		}

		paidOn := u.now()
		total := decimal.Zero
		for i := range unpaid {
			if err := unpaid[i].MarkPaid(paidOn); err != nil {
				return err
			}
			if err := r.EMIs.Save(ctx, &unpaid[i]); err != nil {
				return err
			}
			total = total.Add(unpaid[i].Amount)
		}

		if err := l.Close(); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		out = &Receipt{
			ReceiptID:  uuid.NewString(),
			LoanID:     l.LoanID,
			PaidCount:  len(unpaid),
			PaidAmount: total,
			PaidOn:     paidOn.UTC(),
			LoanStatus: l.Status,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rule.ErrNotFound
		}
		return nil, err
	}

	u.log.Info("all emis paid",
		zap.String("loan_id", loanID),
		zap.Int("paid_count", out.PaidCount))
	return out, nil
}
