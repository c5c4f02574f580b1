package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-friendly schemas for tests only (no mysql ENUM columns).

type loanSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	LoanID        string          `gorm:"size:32;column:loan_id"`
	CustomerID    string          `gorm:"size:32;column:customer_id"`
	LoanTypeRef   uint64          `gorm:"column:loan_type_ref"`
	LoanTypeID    string          `gorm:"size:32;column:loan_type_id"`
	LoanAmount    decimal.Decimal `gorm:"type:text;column:loan_amount"`
	Tenure        int             `gorm:"column:tenure"`
	Status        string          `gorm:"type:text;column:status"` // ← no enum
	AppliedDate   time.Time       `gorm:"column:applied_date"`
	ReviewedOn    *time.Time      `gorm:"column:reviewed_on"`
	ReviewedBy    string          `gorm:"column:reviewed_by"`
	ReviewRemarks string          `gorm:"column:review_remarks"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loan_applications" }

type loanTypeSQLite struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	LoanTypeID string          `gorm:"size:32;column:loan_type_id"`
	Name       string          `gorm:"column:name"`
	ROI        decimal.Decimal `gorm:"type:text;column:roi"`
	MinAmount  decimal.Decimal `gorm:"type:text;column:min_amount"`
	MaxAmount  decimal.Decimal `gorm:"type:text;column:max_amount"`
	MaxTenure  int             `gorm:"column:max_tenure"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (loanTypeSQLite) TableName() string { return "loan_types" }

type emiSQLite struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	EMIID      string          `gorm:"size:32;column:emi_id"`
	LoanRef    uint64          `gorm:"column:loan_ref"`
	LoanID     string          `gorm:"size:32;column:loan_id"`
	DueDate    time.Time       `gorm:"column:due_date"`
	Amount     decimal.Decimal `gorm:"type:text;column:amount"`
	PaidStatus bool            `gorm:"column:paid_status"`
	PaidOn     *time.Time      `gorm:"column:paid_on"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (emiSQLite) TableName() string { return "emis" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the mysql domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &loanTypeSQLite{}, &emiSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
