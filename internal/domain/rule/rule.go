package rule

import "errors"

// Error carries a machine-readable rule code alongside the human message.
// Handlers match on the code; callers can correct their input and retry.
type Error struct {
	Code    string `json:"rule"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

func New(code, message string) *Error { return &Error{Code: code, Message: message} }

// Validation rules, checked in this order on application submission.
var (
	ErrInvalidAmount        = New("INVALID_AMOUNT", "loan amount must be greater than zero")
	ErrInvalidLoanType      = New("INVALID_LOAN_TYPE", "selected loan type does not exist")
	ErrInvalidTenure        = New("INVALID_TENURE", "tenure must be greater than zero")
	ErrAmountOutOfRange     = New("AMOUNT_OUT_OF_RANGE", "loan amount is outside the allowed range for this loan type")
	ErrTenureExceeded       = New("TENURE_EXCEEDED", "tenure exceeds the maximum for this loan type")
	ErrDuplicateApplication = New("DUPLICATE_APPLICATION", "a pending application already exists for this loan type")
)

// State rules.
var (
	ErrAlreadyProcessed = New("ALREADY_PROCESSED", "loan has already been processed")
	ErrLoanNotApproved  = New("LOAN_NOT_APPROVED", "loan is not in approved status")
	ErrAlreadyPaid      = New("ALREADY_PAID", "EMI has already been paid")
)

// Lookup failures.
var (
	ErrNotFound = New("NOT_FOUND", "requested record does not exist")
)

// AsError unwraps err into a *Error when it carries a rule code.
func AsError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// Is reports whether err carries the same rule code as target.
func Is(err error, target *Error) bool {
	re, ok := AsError(err)
	return ok && re.Code == target.Code
}
