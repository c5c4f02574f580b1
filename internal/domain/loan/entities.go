package loan

import (
	"time"

	"loan-management-backend/internal/domain/rule"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusClosed      Status = "closed"
)

// LoanApplication is the aggregate the lifecycle revolves around.
// Officer review mutates the status/review fields; payment reconciliation
// only ever moves approved -> closed. ROI is captured on the application
// at approval so later product edits cannot change an issued schedule.
type LoanApplication struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID        string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID    string          `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	LoanTypeRef   uint64          `gorm:"column:loan_type_ref;not null;index" json:"-"`
	LoanTypeID    string          `gorm:"size:32" json:"loan_type_id"`
	LoanAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"loan_amount"`
	Tenure        int             `gorm:"not null" json:"tenure"`
	Status        Status          `gorm:"type:enum('applied','under_review','approved','rejected','closed');default:'applied'" json:"status"`
	AppliedDate   time.Time       `gorm:"not null" json:"applied_date"`
	ReviewedOn    *time.Time      `json:"reviewed_on,omitempty"`
	ReviewedBy    string          `gorm:"size:32" json:"reviewed_by,omitempty"`
	ReviewRemarks string          `gorm:"type:text" json:"review_remarks,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// Terminal reports whether no further review transition is allowed.
func (l *LoanApplication) Terminal() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected || l.Status == StatusClosed
}

// MarkUnderReview transitions applied -> under_review. Any other current
// status means the loan was already picked up or processed.
func (l *LoanApplication) MarkUnderReview(reviewerID, remarks string, now time.Time) error {
	if l.Status != StatusApplied {
		return rule.ErrAlreadyProcessed
	}
	l.Status = StatusUnderReview
	l.stampReview(reviewerID, remarks, now)
	return nil
}

// Approve transitions applied/under_review -> approved. The caller must
// create the full EMI schedule in the same transaction.
func (l *LoanApplication) Approve(reviewerID, remarks string, now time.Time) error {
	if l.Terminal() {
		return rule.ErrAlreadyProcessed
	}
	l.Status = StatusApproved
	l.stampReview(reviewerID, remarks, now)
	return nil
}

// Reject transitions applied/under_review -> rejected. No EMIs are ever
// generated for a rejected loan.
func (l *LoanApplication) Reject(reviewerID, remarks string, now time.Time) error {
	if l.Terminal() {
		return rule.ErrAlreadyProcessed
	}
	l.Status = StatusRejected
	l.stampReview(reviewerID, remarks, now)
	return nil
}

// Close transitions approved -> closed. Driven only by payment
// reconciliation, never by an operator.
func (l *LoanApplication) Close() error {
	if l.Status != StatusApproved {
		return rule.ErrLoanNotApproved
	}
	l.Status = StatusClosed
	return nil
}

func (l *LoanApplication) stampReview(reviewerID, remarks string, now time.Time) {
	t := now.UTC()
	l.ReviewedOn = &t
	l.ReviewedBy = reviewerID
	l.ReviewRemarks = remarks
}
