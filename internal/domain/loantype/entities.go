package loantype

import (
	"time"

	"loan-management-backend/internal/domain/rule"

	"github.com/shopspring/decimal"
)

// LoanType is the product a customer applies against. ROI is the annual
// interest rate in percent. Updating a loan type never touches EMIs
// already issued under it; the rate is copied at approval time.
type LoanType struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanTypeID string          `gorm:"size:32;uniqueIndex:ux_loan_types_public_id" json:"loan_type_id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	ROI        decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"roi"`
	MinAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"min_amount"`
	MaxAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"max_amount"`
	MaxTenure  int             `gorm:"not null" json:"max_tenure"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanType) TableName() string { return "loan_types" }

// Validate enforces the structural invariants: positive ROI, positive
// MaxTenure, MinAmount <= MaxAmount.
func (t *LoanType) Validate() error {
	if t.Name == "" {
		return rule.New("INVALID_LOAN_TYPE", "loan type name is required")
	}
	if !t.ROI.IsPositive() {
		return rule.New("INVALID_LOAN_TYPE", "ROI must be greater than zero")
	}
	if t.MaxTenure <= 0 {
		return rule.New("INVALID_LOAN_TYPE", "max tenure must be greater than zero")
	}
	if t.MinAmount.GreaterThan(t.MaxAmount) {
		return rule.New("INVALID_LOAN_TYPE", "min amount must not exceed max amount")
	}
	return nil
}
