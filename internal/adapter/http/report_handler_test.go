package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loan-management-backend/internal/domain/identity"
	emimock "loan-management-backend/internal/testutil/emimock"
	loanmock "loan-management-backend/internal/testutil/loanmock"
	uc "loan-management-backend/internal/usecase/report"

	"github.com/shopspring/decimal"
)

func reportHandler(emis *emimock.Repo) *ReportHandler {
	return NewReportHandler(uc.NewUsecase(&loanmock.Repo{}, emis, identity.StaticDirectory{}))
}

func TestOutstanding_Success(t *testing.T) {
	e := newEchoWithValidator()
	emis := &emimock.Repo{
		SumAmountsFn: func(ctx context.Context, paid bool) (decimal.Decimal, error) {
			if paid {
				return decimal.RequireFromString("351.66"), nil
			}
			return decimal.RequireFromString("1758.30"), nil
		},
	}
	h := reportHandler(emis)

	req := httptest.NewRequest(stdhttp.MethodGet, "/officer/reports/outstanding", nil)
	req.Header.Set(HeaderReviewerID, strings.Repeat("f", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Outstanding(c); err != nil {
		t.Fatalf("Outstanding error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.Outstanding
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.TotalOutstanding.Equal(decimal.RequireFromString("1758.30")) ||
		!got.TotalCollected.Equal(decimal.RequireFromString("351.66")) {
		t.Fatalf("unexpected sums: %+v", got)
	}
}

func TestOutstanding_MissingReviewerHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := reportHandler(&emimock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/officer/reports/outstanding", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Outstanding(c); err != nil {
		t.Fatalf("Outstanding error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMonthly_NonIntegerMonth(t *testing.T) {
	e := newEchoWithValidator()
	h := reportHandler(&emimock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/officer/reports/monthly?month=june&year=2026", nil)
	req.Header.Set(HeaderReviewerID, strings.Repeat("f", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Monthly(c); err != nil {
		t.Fatalf("Monthly error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMonthly_MonthOutOfRange(t *testing.T) {
	e := newEchoWithValidator()
	h := reportHandler(&emimock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/officer/reports/monthly?month=13&year=2026", nil)
	req.Header.Set(HeaderReviewerID, strings.Repeat("f", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Monthly(c); err != nil {
		t.Fatalf("Monthly error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Rule != "INVALID_MONTH" {
		t.Fatalf("rule = %q, want INVALID_MONTH", er.Rule)
	}
}

func TestMonthly_EmptyMonthIsOK(t *testing.T) {
	e := newEchoWithValidator()
	h := reportHandler(&emimock.Repo{}) // no rows due

	req := httptest.NewRequest(stdhttp.MethodGet, "/officer/reports/monthly?month=6&year=2026", nil)
	req.Header.Set(HeaderReviewerID, strings.Repeat("f", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Monthly(c); err != nil {
		t.Fatalf("Monthly error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.MonthlyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Month != 6 || got.Year != 2026 || got.TotalEMIs != 0 {
		t.Fatalf("unexpected report: %+v", got)
	}
}
