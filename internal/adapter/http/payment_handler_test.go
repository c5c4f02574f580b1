package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	emiDomain "loan-management-backend/internal/domain/emi"
	loanDomain "loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/domain/uow"
	emimock "loan-management-backend/internal/testutil/emimock"
	loanmock "loan-management-backend/internal/testutil/loanmock"
	uowmock "loan-management-backend/internal/testutil/uowmock"
	uc "loan-management-backend/internal/usecase/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func paymentFixture(l *loanDomain.LoanApplication, e *emiDomain.EMI) *uc.Usecase {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
			if l == nil || loanID != l.LoanID {
				return nil, gorm.ErrRecordNotFound
			}
			return l, nil
		},
	}
	emis := &emimock.Repo{
		GetByEMIIDFn: func(ctx context.Context, emiID string) (*emiDomain.EMI, error) {
			if e == nil || emiID != e.EMIID {
				return nil, gorm.ErrRecordNotFound
			}
			return e, nil
		},
		GetByEMIIDForUpdateFn: func(ctx context.Context, emiID string) (*emiDomain.EMI, error) {
			if e == nil || emiID != e.EMIID {
				return nil, gorm.ErrRecordNotFound
			}
			return e, nil
		},
		CountUnpaidByLoanRefFn: func(ctx context.Context, loanRef uint64) (int64, error) {
			return 3, nil // more installments remain
		},
	}
	mock := uowmock.New(uow.Repos{Loans: loans, EMIs: emis})
	return uc.NewUsecase(emis, mock, nil)
}

func approvedLoanWithEMI() (*loanDomain.LoanApplication, *emiDomain.EMI) {
	l := &loanDomain.LoanApplication{
		ID:         1,
		LoanID:     strings.Repeat("1", 32),
		CustomerID: strings.Repeat("c", 32),
		Status:     loanDomain.StatusApproved,
	}
	e := &emiDomain.EMI{
		EMIID:   strings.Repeat("e", 32),
		LoanRef: l.ID,
		LoanID:  l.LoanID,
		Amount:  decimal.RequireFromString("175.83"),
	}
	return l, e
}

func TestPayEMI_Success(t *testing.T) {
	ech := newEchoWithValidator()
	l, emi := approvedLoanWithEMI()
	h := NewPaymentHandler(paymentFixture(l, emi))

	req := httptest.NewRequest(stdhttp.MethodPut, "/emis/x/pay", nil)
	req.Header.Set(HeaderCustomerID, l.CustomerID)
	rec := httptest.NewRecorder()
	c := ech.NewContext(req, rec)
	c.SetParamNames("emi_id")
	c.SetParamValues(emi.EMIID)

	if err := h.PayEMI(c); err != nil {
		t.Fatalf("PayEMI error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.Receipt
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ReceiptID == "" || got.EMIID != emi.EMIID || got.PaidCount != 1 {
		t.Fatalf("unexpected receipt: %+v", got)
	}
	if !got.PaidAmount.Equal(decimal.RequireFromString("175.83")) {
		t.Fatalf("paid_amount = %s", got.PaidAmount)
	}
	if got.LoanStatus != loanDomain.StatusApproved {
		t.Fatalf("loan_status = %s, want approved (unpaid EMIs remain)", got.LoanStatus)
	}
}

func TestPayEMI_BadParam(t *testing.T) {
	ech := newEchoWithValidator()
	h := NewPaymentHandler(paymentFixture(nil, nil))

	req := httptest.NewRequest(stdhttp.MethodPut, "/emis/x/pay", nil)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := ech.NewContext(req, rec)
	c.SetParamNames("emi_id")
	c.SetParamValues("not-hex")

	if err := h.PayEMI(c); err != nil {
		t.Fatalf("PayEMI error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPayEMI_UnknownIsNotFound(t *testing.T) {
	ech := newEchoWithValidator()
	h := NewPaymentHandler(paymentFixture(nil, nil))

	req := httptest.NewRequest(stdhttp.MethodPut, "/emis/x/pay", nil)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := ech.NewContext(req, rec)
	c.SetParamNames("emi_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.PayEMI(c); err != nil {
		t.Fatalf("PayEMI error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPayAll_NothingUnpaidConflicts(t *testing.T) {
	ech := newEchoWithValidator()
	l, emi := approvedLoanWithEMI()
	// fixture's ListUnpaidByLoanRefForUpdate defaults to empty
	h := NewPaymentHandler(paymentFixture(l, emi))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/x/pay-all", nil)
	req.Header.Set(HeaderCustomerID, l.CustomerID)
	rec := httptest.NewRecorder()
	c := ech.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(l.LoanID)

	if err := h.PayAll(c); err != nil {
		t.Fatalf("PayAll error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body: %s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Rule != "ALREADY_PAID" {
		t.Fatalf("rule = %q, want ALREADY_PAID", er.Rule)
	}
}
