// Package emi holds the installment math for approved loans: the
// reducing-balance EMI formula and the calendar arithmetic for due dates.
package emi

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrincipal = errors.New("emi: principal must be greater than zero")
	ErrNonPositiveRate      = errors.New("emi: annual rate must be greater than zero")
	ErrNonPositiveTenure    = errors.New("emi: tenure must be greater than zero")
)

// Calculate returns the fixed monthly installment for a reducing-balance
// loan: P*r*(1+r)^n / ((1+r)^n - 1) with r = annualRatePercent/12/100.
//
// The result is rounded to 2 decimal places, half away from zero
// (decimal.Round semantics). Reference: 2000 at 10% over 12 months
// yields 175.83. Deterministic, no shared state.
func Calculate(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, ErrNonPositivePrincipal
	}
	if !annualRatePercent.IsPositive() {
		return decimal.Zero, ErrNonPositiveRate
	}
	if tenureMonths <= 0 {
		return decimal.Zero, ErrNonPositiveTenure
	}

	p, _ := principal.Float64()
	r, _ := annualRatePercent.Float64()
	monthly := r / 12 / 100
	pow := math.Pow(1+monthly, float64(tenureMonths))
	raw := p * monthly * pow / (pow - 1)

	return decimal.NewFromFloat(raw).Round(2), nil
}
