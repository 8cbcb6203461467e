// Package interest validates raw form input and computes simple interest.
//
// Validation and calculation are pure functions; every front-end (CLI, HTTP,
// desktop) goes through them so the messages and rounding are identical
// everywhere.
package interest

import "github.com/shopspring/decimal"

// Field names used in error context
const (
	FieldPrincipal = "principal"
	FieldRate      = "rate"
	FieldPeriod    = "period"
)

// maxRate is the largest accepted rate, in percent
var maxRate = decimal.NewFromInt(100)

// CalculationRequest is a validated set of inputs
type CalculationRequest struct {
	// Principal is the initial sum
	Principal decimal.Decimal `json:"principal"`

	// Rate is the annual rate in percent, in (0, 100]
	Rate decimal.Decimal `json:"rate"`

	// PeriodYears is the number of years interest accrues
	PeriodYears decimal.Decimal `json:"period_years"`
}
