package emi

import (
	"time"

	"loan-management-backend/internal/domain/rule"

	"github.com/shopspring/decimal"
)

// EMI is one installment of an approved loan's schedule. Amount is fixed
// at schedule-generation time and never changes; PaidOn is set exactly
// when PaidStatus flips to true.
type EMI struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	EMIID      string          `gorm:"size:32;uniqueIndex:ux_emis_emi_id" json:"emi_id"`
	LoanRef    uint64          `gorm:"column:loan_ref;not null;index:idx_emis_loan" json:"-"`
	LoanID     string          `gorm:"size:32;index" json:"loan_id"`
	DueDate    time.Time       `gorm:"not null" json:"due_date"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaidStatus bool            `gorm:"not null;default:false" json:"paid_status"`
	PaidOn     *time.Time      `json:"paid_on,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EMI) TableName() string { return "emis" }

// MarkPaid flips an unpaid installment to paid. Paying twice is always
// rejected so replays can never double-apply.
func (e *EMI) MarkPaid(now time.Time) error {
	if e.PaidStatus {
		return rule.ErrAlreadyPaid
	}
	t := now.UTC()
	e.PaidStatus = true
	e.PaidOn = &t
	return nil
}
