package report

import (
	"context"
	"time"

	emiDomain "loan-management-backend/internal/domain/emi"
	"loan-management-backend/internal/domain/identity"
	loanDomain "loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/rule"

	"github.com/shopspring/decimal"
)

// Usecase serves the officer reporting queries. Read-only: nothing here
// mutates loans or EMIs.
type Usecase struct {
	loans     loanDomain.Repository
	emis      emiDomain.Repository
	directory identity.Directory
	now       func() time.Time
}

func NewUsecase(loans loanDomain.Repository, emis emiDomain.Repository, directory identity.Directory) *Usecase {
	return &Usecase{loans: loans, emis: emis, directory: directory, now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type Outstanding struct {
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
}

// Outstanding sums unpaid and paid EMI amounts across the book.
func (u *Usecase) Outstanding(ctx context.Context) (*Outstanding, error) {
	unpaid, err := u.emis.SumAmounts(ctx, false)
	if err != nil {
		return nil, err
	}
	paid, err := u.emis.SumAmounts(ctx, true)
	if err != nil {
		return nil, err
	}
	return &Outstanding{TotalOutstanding: unpaid, TotalCollected: paid}, nil
}

// StatusCounts groups loans by status with counts and principal sums.
func (u *Usecase) StatusCounts(ctx context.Context) ([]loanDomain.StatusCount, error) {
	return u.loans.CountByStatus(ctx)
}

type OverdueEMI struct {
	EMIID    string          `json:"emi_id"`
	LoanID   string          `json:"loan_id"`
	DueDate  time.Time       `json:"due_date"`
	Amount   decimal.Decimal `json:"amount"`
	DaysLate int             `json:"days_late"`
}

// Overdue lists unpaid EMIs whose due date has passed. Due-date passage
// is evaluated here on read; no scheduler advances the book.
func (u *Usecase) Overdue(ctx context.Context) ([]OverdueEMI, error) {
	now := u.now().UTC()
	emis, err := u.emis.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	out := make([]OverdueEMI, 0, len(emis))
	for _, e := range emis {
		out = append(out, OverdueEMI{
			EMIID:    e.EMIID,
			LoanID:   e.LoanID,
			DueDate:  e.DueDate,
			Amount:   e.Amount,
			DaysLate: int(now.Sub(e.DueDate).Hours() / 24),
		})
	}
	return out, nil
}

type MonthlyReport struct {
	Month       int                 `json:"month"`
	Year        int                 `json:"year"`
	TotalEMIs   int                 `json:"total_emis"`
	PaidEMIs    int                 `json:"paid_emis"`
	PendingEMIs int                 `json:"pending_emis"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Records     []MonthlyRecord     `json:"records"`
	ByCustomer  []CustomerBreakdown `json:"by_customer"`
}

type MonthlyRecord struct {
	EMIID         string          `json:"emi_id"`
	LoanID        string          `json:"loan_id"`
	CustomerEmail string          `json:"customer_email"`
	DueDate       time.Time       `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaidStatus    bool            `json:"paid_status"`
}

type CustomerBreakdown struct {
	CustomerEmail string          `json:"customer_email"`
	TotalEMIs     int             `json:"total_emis"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

// Monthly reports every EMI due in the given calendar month, with paid
// and pending splits and a per-customer grouping.
func (u *Usecase) Monthly(ctx context.Context, month, year int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, rule.New("INVALID_MONTH", "month must be between 1 and 12")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := u.emis.ListDueBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rep := &MonthlyReport{
		Month:       month,
		Year:        year,
		TotalAmount: decimal.Zero,
		Records:     make([]MonthlyRecord, 0, len(rows)),
	}
	perCustomer := map[string]*CustomerBreakdown{}
	order := make([]string, 0)

	for _, row := range rows {
		email, err := u.directory.ResolveEmail(ctx, row.CustomerID)
		if err != nil {
			email = row.CustomerID
		}

		rep.TotalEMIs++
		rep.TotalAmount = rep.TotalAmount.Add(row.Amount)
		if row.PaidStatus {
			rep.PaidEMIs++
		} else {
			rep.PendingEMIs++
		}
		rep.Records = append(rep.Records, MonthlyRecord{
			EMIID:         row.EMIID,
			LoanID:        row.LoanID,
			CustomerEmail: email,
			DueDate:       row.DueDate,
			Amount:        row.Amount,
			PaidStatus:    row.PaidStatus,
		})

		cb, ok := perCustomer[email]
		if !ok {
			cb = &CustomerBreakdown{CustomerEmail: email, PaidAmount: decimal.Zero, PendingAmount: decimal.Zero}
			perCustomer[email] = cb
			order = append(order, email)
		}
		cb.TotalEMIs++
		if row.PaidStatus {
			cb.PaidAmount = cb.PaidAmount.Add(row.Amount)
		} else {
			cb.PendingAmount = cb.PendingAmount.Add(row.Amount)
		}
	}

	rep.ByCustomer = make([]CustomerBreakdown, 0, len(order))
	for _, email := range order {
		rep.ByCustomer = append(rep.ByCustomer, *perCustomer[email])
	}
	return rep, nil
}
