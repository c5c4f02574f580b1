package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	loanDomain "loan-management-backend/internal/domain/loan"
	typeDomain "loan-management-backend/internal/domain/loantype"
	emimock "loan-management-backend/internal/testutil/emimock"
	loanmock "loan-management-backend/internal/testutil/loanmock"
	loantypemock "loan-management-backend/internal/testutil/loantypemock"
	uc "loan-management-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func personalLoanType() *typeDomain.LoanType {
	return &typeDomain.LoanType{
		ID:         1,
		LoanTypeID: strings.Repeat("7", 32),
		Name:       "Personal Loan",
		ROI:        decimal.RequireFromString("10.00"),
		MinAmount:  decimal.RequireFromString("1000.00"),
		MaxAmount:  decimal.RequireFromString("50000.00"),
		MaxTenure:  36,
	}
}

func applyUsecase(loans *loanmock.Repo, types *loantypemock.Repo) *uc.Usecase {
	return uc.NewUsecase(loans, types, &emimock.Repo{}, nil)
}

// -------- tests --------

func TestApply_Success(t *testing.T) {
	e := newEchoWithValidator()

	lt := personalLoanType()
	loans := &loanmock.Repo{
		HasPendingApplicationFn: func(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error) {
			return false, nil
		},
		CreateFn: func(ctx context.Context, l *loanDomain.LoanApplication) error { return nil },
	}
	types := &loantypemock.Repo{
		GetByLoanTypeIDFn: func(ctx context.Context, loanTypeID string) (*typeDomain.LoanType, error) {
			return lt, nil
		},
	}
	h := NewApplicationHandler(applyUsecase(loans, types))

	reqBody := map[string]any{
		"loan_type_id": lt.LoanTypeID,
		"amount":       2000,
		"tenure":       12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/apply", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.SubmitResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != "applied" || got.LoanID == "" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.AppliedDate.IsZero() || got.AppliedDate.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("applied_date = %v", got.AppliedDate)
	}
}

func TestApply_MissingCustomerHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(applyUsecase(&loanmock.Repo{}, &loantypemock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/apply", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestApply_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(applyUsecase(&loanmock.Repo{}, &loantypemock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/apply", strings.NewReader(`{"loan_type_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestApply_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewApplicationHandler(applyUsecase(&loanmock.Repo{}, &loantypemock.Repo{}))

	// invalid: loan_type_id not hex32, amount with 3 decimal places
	reqBody := map[string]any{
		"loan_type_id": "NOT_HEX_32",
		"amount":       2000.123,
		"tenure":       12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/apply", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q, want %q", er.Error, "validation failed")
	}
	if !containsFieldMsg(er.Details, "LoanTypeID", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 detail: %+v", er.Details)
	}
}

func TestApply_DuplicateApplication(t *testing.T) {
	e := newEchoWithValidator()

	lt := personalLoanType()
	loans := &loanmock.Repo{
		HasPendingApplicationFn: func(ctx context.Context, customerID string, loanTypeRef uint64) (bool, error) {
			return true, nil
		},
	}
	types := &loantypemock.Repo{
		GetByLoanTypeIDFn: func(ctx context.Context, loanTypeID string) (*typeDomain.LoanType, error) {
			return lt, nil
		},
	}
	h := NewApplicationHandler(applyUsecase(loans, types))

	reqBody := map[string]any{
		"loan_type_id": lt.LoanTypeID,
		"amount":       2000,
		"tenure":       12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/apply", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Rule != "DUPLICATE_APPLICATION" {
		t.Fatalf("rule = %q, want DUPLICATE_APPLICATION", er.Rule)
	}
}

func TestEMIsByLoan_WrongOwnerIsNotFound(t *testing.T) {
	e := newEchoWithValidator()

	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
			return &loanDomain.LoanApplication{
				ID:         1,
				LoanID:     loanID,
				CustomerID: strings.Repeat("a", 32), // someone else's loan
				Status:     loanDomain.StatusApproved,
			}, nil
		},
	}
	h := NewApplicationHandler(applyUsecase(loans, &loantypemock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/xxx/emis", nil)
	req.Header.Set(HeaderCustomerID, strings.Repeat("c", 32))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("1", 32))

	if err := h.EMIsByLoan(c); err != nil {
		t.Fatalf("EMIsByLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestLoanTypes_Success(t *testing.T) {
	e := newEchoWithValidator()

	types := &loantypemock.Repo{
		ListFn: func(ctx context.Context) ([]typeDomain.LoanType, error) {
			return []typeDomain.LoanType{*personalLoanType()}, nil
		},
	}
	h := NewApplicationHandler(applyUsecase(&loanmock.Repo{}, types))

	req := httptest.NewRequest(stdhttp.MethodGet, "/loan-types", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.LoanTypes(c); err != nil {
		t.Fatalf("LoanTypes error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []typeDomain.LoanType
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Personal Loan" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
