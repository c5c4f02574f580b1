package http

import (
	"net/http"
	"strings"

	"loan-management-backend/internal/domain/rule"

	"github.com/labstack/echo/v4"
)

// callerID pulls the pre-authenticated caller identity from the given
// header. Authentication itself happens upstream; the core only trusts
// the id format.
func callerID(c echo.Context, header string) (string, bool) {
	v := strings.TrimSpace(c.Request().Header.Get(header))
	if !reHex32.MatchString(v) {
		return "", false
	}
	return v, true
}

// writeDomainErr maps rule-coded errors onto HTTP statuses. Anything
// without a rule code is a real failure and surfaces as a 500.
func writeDomainErr(c echo.Context, err error) error {
	re, ok := rule.AsError(err)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	status := http.StatusBadRequest
	switch re.Code {
	case rule.ErrNotFound.Code:
		status = http.StatusNotFound
	case rule.ErrAlreadyProcessed.Code, rule.ErrAlreadyPaid.Code:
		status = http.StatusConflict
	}
	return c.JSON(status, ErrorResponse{Error: re.Message, Rule: re.Code})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
