package interest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"interest-calc/internal/errors"
)

// Display text for each input error kind
const (
	MsgMissingField     = "All fields are required."
	MsgNotANumber       = "Invalid Input, should be a number."
	MsgNonPositiveValue = "Input should be greater than 0."
	MsgRateOutOfRange   = "Rate should not be more than 100."
)

// Validate returns the error text for the three raw inputs, or "" when they
// form a valid request.
func Validate(principalText, rateText, periodText string) string {
	_, err := Parse(principalText, rateText, periodText)
	return errors.Message(err)
}

// Parse validates the raw inputs and builds a CalculationRequest.
// Rules are checked in order and the first failure wins:
// empty field, unparsable field, non-positive value, rate above 100.
// The returned error is always an *errors.Error of an input kind.
func Parse(principalText, rateText, periodText string) (CalculationRequest, error) {
	raw := [3]struct{ field, text string }{
		{FieldPrincipal, principalText},
		{FieldRate, rateText},
		{FieldPeriod, periodText},
	}

	for _, r := range raw {
		if r.text == "" {
			return CalculationRequest{}, errors.New(errors.KindMissingField, MsgMissingField).WithField(r.field)
		}
	}

	var values [3]decimal.Decimal
	for i, r := range raw {
		v, err := parseNumber(r.text)
		if err != nil {
			return CalculationRequest{}, errors.Wrap(errors.KindNotANumber, MsgNotANumber, err).WithField(r.field)
		}
		values[i] = v
	}

	for i, v := range values {
		if !v.IsPositive() {
			return CalculationRequest{}, errors.New(errors.KindNonPositiveValue, MsgNonPositiveValue).WithField(raw[i].field)
		}
	}

	req := CalculationRequest{
		Principal:   values[0],
		Rate:        values[1],
		PeriodYears: values[2],
	}
	if req.Rate.GreaterThan(maxRate) {
		return CalculationRequest{}, errors.New(errors.KindRateOutOfRange, MsgRateOutOfRange).WithField(FieldRate)
	}
	return req, nil
}

// Accepted magnitudes, roughly the range of an IEEE double. Anything outside
// would make the product or its fixed-point rendering unbounded.
const (
	minExponent  = -340
	maxMagnitude = 308
)

// parseNumber accepts plain and exponent notation, ignoring surrounding
// whitespace. A whitespace-only string is not a number, and neither is a
// non-zero value whose exponent or order of magnitude is out of range.
func parseNumber(text string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if v.IsZero() {
		return v, nil
	}
	exp := int64(v.Exponent())
	if exp < minExponent || exp+int64(v.NumDigits())-1 > maxMagnitude {
		return decimal.Decimal{}, fmt.Errorf("%q is out of range", text)
	}
	return v, nil
}
