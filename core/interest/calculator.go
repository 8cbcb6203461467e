package interest

import "github.com/shopspring/decimal"

// ResultPrefix precedes the formatted amount in every result string
const ResultPrefix = "Interest = "

// Interest returns principal * rate * periodYears / 100, unrounded.
// The division is a decimal shift, so the result is exact.
func Interest(req CalculationRequest) decimal.Decimal {
	return req.Principal.Mul(req.Rate).Mul(req.PeriodYears).Shift(-2)
}

// Calculate renders simple interest with two fractional digits, rounding
// half away from zero. Inputs are expected to have passed Validate.
func Calculate(principal, rate, periodYears decimal.Decimal) string {
	return Format(Interest(CalculationRequest{
		Principal:   principal,
		Rate:        rate,
		PeriodYears: periodYears,
	}))
}

// Format renders an interest amount as a result string
func Format(amount decimal.Decimal) string {
	return ResultPrefix + amount.StringFixed(2)
}
